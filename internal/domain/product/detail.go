package product

// ConditionNew is the condition assigned to records created by a merge.
const ConditionNew = "new"

// Detail is the product-page record kept in the secondary detail store.
type Detail struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Price        *float64   `json:"price,omitempty"`
	Condition    string     `json:"condition,omitempty"`
	SoldQuantity int        `json:"sold_quantity"`
	FullImage    string     `json:"fullImage,omitempty"`
	Description  string     `json:"description,omitempty"`
	CategoryPath []Category `json:"category_path_from_root,omitempty"`
}
