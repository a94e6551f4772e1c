package models

// InsectTree is a join row linking one insect to one tree. The
// (insect_id, tree_id) pair is unique at the storage layer; rows are created
// only through the association service and removed only by explicit deletion
// flows such as seed rollback.
type InsectTree struct {
	ID       int64 `json:"id"`
	InsectID int64 `json:"insectId"`
	TreeID   int64 `json:"treeId"`
}
