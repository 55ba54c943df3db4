package model

// Bookmark представляет пару «короткое имя → длинный URI».
type Bookmark struct {
	Name string `json:"short_name"`
	URI  string `json:"long_uri"`
}
