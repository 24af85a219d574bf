package domain

// Servicio is a catalog item with a price and a duration. Read-mostly;
// referenced by citas.
type Servicio struct {
	ID              int     `json:"id_servicio" bson:"_id"`
	NombreServicio  string  `json:"nombre_servicio" bson:"nombre_servicio"`
	Descripcion     string  `json:"descripcion" bson:"descripcion"`
	Precio          float64 `json:"precio" bson:"precio"`
	DuracionMinutos int     `json:"duracion_minutos" bson:"duracion_minutos"`
}
