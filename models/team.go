package models

// Team is a competing entity. Its ID never changes once a fixture references it;
// only Name may be edited.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
