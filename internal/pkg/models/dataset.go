package models

// DatasetFile describes one CSV file written by the generator
type DatasetFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Rows int    `json:"rows"`
}
