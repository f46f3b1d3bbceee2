package entity

type Favorite struct {
	ID                 int64     `json:"id"`
	ProductID          int64     `json:"productoId" validate:"required"`
	ProductName        string    `json:"productoNombre"`
	ProductDescription string    `json:"productoDescripcion"`
	ProductImage       string    `json:"productoImagen,omitempty"`
	ProductActive      bool      `json:"productoActivo"`
	CreatedAt          Timestamp `json:"createdAt"`
}

const (
	FavoriteAdded   = "added"
	FavoriteRemoved = "removed"
)

type FavoriteToggle struct {
	Action   string    `json:"action" validate:"oneof=added removed"`
	Favorite *Favorite `json:"favorito,omitempty"`
}
