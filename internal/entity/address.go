package entity

import "strings"

type Address struct {
	ID         int64  `json:"id,omitempty"`
	Label      string `json:"nombre" validate:"required,min=2,max=100"`
	Line       string `json:"direccion" validate:"required,min=10,max=500"`
	City       string `json:"ciudad"`
	Sector     string `json:"sector" validate:"required"`
	Phone      string `json:"telefono,omitempty" validate:"max=20"`
	References string `json:"referencias,omitempty" validate:"max=200"`
	Default    bool   `json:"esPrincipal"`
	Active     bool   `json:"activa"`
}

// Capital is the only city with a sector catalog and the reduced shipping fee.
const Capital = "Quito"

// quitoSectors lists the urban and rural parishes of the Quito metropolitan district
// offered by the address form.
var quitoSectors = []string{
	"Belisario Quevedo", "Carcelén", "Centro Histórico", "Chilibulo", "Chillogallo",
	"Chimbacalle", "Cochapamba", "Comité del Pueblo", "Concepción", "Cotocollao",
	"El Condado", "Guamaní", "Iñaquito", "Itchimbía", "Jipijapa", "Kennedy",
	"La Argelia", "La Concepción", "La Ecuatoriana", "La Ferroviaria", "La Libertad",
	"La Magdalena", "La Mena", "Mariscal Sucre", "Ponceano", "Puengasí", "Quitumbe",
	"Rumipamba", "San Bartolo", "San Isidro del Inca", "San Juan", "Solanda", "Turubamba",

	"Alangasí", "Amaguaña", "Atahualpa", "Calacalí", "Calderón", "Conocoto",
	"Cumbayá", "Chavezpamba", "Checa", "El Quinche", "Gualea", "Guangopolo",
	"Guayllabamba", "La Merced", "Llano Chico", "Lloa", "Mindo", "Nanegal",
	"Nanegalito", "Nayón", "Nono", "Pacto", "Pedro Vicente Maldonado", "Perucho",
	"Pifo", "Píntag", "Pomasqui", "Puéllaro", "Puembo", "Puerto Quito", "San Antonio",
	"San José de Minas", "San Miguel de los Bancos", "Tababela", "Tumbaco",
	"Yaruquí", "Zámbiza",
}

// capitalFeeSectors are the sectors the backend charges the capital shipping
// fee for. The form catalog has two more ("La Concepción", "Puerto Quito")
// that ship at the provincial rate.
var capitalFeeSectors = func() []string {
	out := make([]string, 0, len(quitoSectors))
	for _, s := range quitoSectors {
		if s != "La Concepción" && s != "Puerto Quito" {
			out = append(out, s)
		}
	}
	return out
}()

// QuitoSectors returns a copy of the sector catalog for select inputs.
func QuitoSectors() []string {
	out := make([]string, len(quitoSectors))
	copy(out, quitoSectors)
	return out
}

// IsQuitoSector reports whether sector is in the form catalog. Matches
// case-insensitively.
func IsQuitoSector(sector string) bool {
	return containsFold(quitoSectors, sector)
}

// HasCapitalFee reports whether the backend ships to sector at the capital fee.
func HasCapitalFee(sector string) bool {
	return containsFold(capitalFeeSectors, sector)
}

func containsFold(list []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
