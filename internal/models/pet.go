package models

// Pet is a stored pet record. ID is empty before creation and generated by
// the persistence layer if the caller supplies none. Type is required.
type Pet struct {
	ID   string `json:"petId"`
	Type string `json:"petType"`
	Name string `json:"petName,omitempty"`
	Age  int    `json:"petAge,omitempty"`
}
