package entity

// Category groups ads; an ad may belong to several categories.
type Category struct {
	ID   int64  `json:"category_id,omitempty"`
	Name string `json:"category_name"`
}

// Categories is a slice of categories with lookup helpers.
type Categories []*Category

// NameOf returns the name of the category with the given id, or "".
func (cs Categories) NameOf(id int64) string {
	for _, c := range cs {
		if c.ID == id {
			return c.Name
		}
	}

	return ""
}
