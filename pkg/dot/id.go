package dot

import "strconv"

// clusterPrefix marks a scope id as a cluster. Graphviz lays out a subgraph
// as a bounded cluster exactly when its name starts with this prefix.
const clusterPrefix = "cluster"

// IDManager hands out identifiers that are unique within one document.
// All entity kinds draw from the same namespace: a hand-picked node id and a
// generated cluster id can collide, and the manager disambiguates them
// against each other.
//
// The registration set only grows. Removing an entity from its graph never
// returns its identifier to the pool, so a removed id is never reissued.
//
// An IDManager is created by [NewRootGraph] and shared by reference with
// every nested scope. It is not safe for concurrent use.
type IDManager struct {
	nextNodeNum     uint64
	nextSubgraphNum uint64 // shared by subgraphs and clusters
	nextCustomNum   uint64 // shared across all custom-id collisions

	existing map[string]struct{}
}

// NewIDManager creates an empty identifier registry.
func NewIDManager() *IDManager {
	return &IDManager{existing: make(map[string]struct{})}
}

// register adds id to the namespace. It reports false when the id is
// already taken.
func (m *IDManager) register(id string) bool {
	if _, taken := m.existing[id]; taken {
		return false
	}
	m.existing[id] = struct{}{}
	return true
}

// NodeID returns a fresh generated node identifier of the form "Node<n>".
// Counter values already claimed by custom ids are skipped.
func (m *IDManager) NodeID() string {
	for {
		id := "Node" + strconv.FormatUint(m.nextNodeNum, 10)
		m.nextNodeNum++
		if m.register(id) {
			return id
		}
		// The user must have hand-picked an id of the form "Node<n>".
	}
}

// SubgraphID returns a fresh generated subgraph identifier of the form
// "Graph<n>".
func (m *IDManager) SubgraphID() string {
	for {
		id := "Graph" + strconv.FormatUint(m.nextSubgraphNum, 10)
		m.nextSubgraphNum++
		if m.register(id) {
			return id
		}
	}
}

// ClusterID returns a fresh generated cluster identifier of the form
// "cluster_<n>". Clusters and subgraphs share one counter.
func (m *IDManager) ClusterID() string {
	for {
		id := clusterPrefix + "_" + strconv.FormatUint(m.nextSubgraphNum, 10)
		m.nextSubgraphNum++
		if m.register(id) {
			return id
		}
	}
}

// CustomID registers a user-supplied identifier. If the candidate is free it
// is returned verbatim. Otherwise a numeric suffix from the document-wide
// collision counter is appended until registration succeeds. The counter is
// never reset per base name, so the same suffix value is never tried twice
// anywhere in the document; suffixes are fresh rather than minimal.
func (m *IDManager) CustomID(candidate string) string {
	if m.register(candidate) {
		return candidate
	}
	for {
		id := candidate + strconv.FormatUint(m.nextCustomNum, 10)
		m.nextCustomNum++
		if m.register(id) {
			return id
		}
	}
}

// CustomClusterID registers a user-supplied cluster identifier, prepending
// the reserved "cluster" prefix when it is absent. An id that already
// carries the prefix is not prefixed again.
func (m *IDManager) CustomClusterID(candidate string) string {
	if len(candidate) < len(clusterPrefix) || candidate[:len(clusterPrefix)] != clusterPrefix {
		candidate = clusterPrefix + candidate
	}
	return m.CustomID(candidate)
}
