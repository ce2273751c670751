package profile

import "github.com/excelsior/engine/internal/engine"

// departments is the Colombian department universe shared by every agency
// profile that carries a geographic column. Display casing is what the
// agencies publish; matching is accent and case insensitive.
var departments = []string{
	"Amazonas",
	"Antioquia",
	"Arauca",
	"Atlántico",
	"Bogotá D.C.",
	"Bolívar",
	"Boyacá",
	"Caldas",
	"Caquetá",
	"Casanare",
	"Cauca",
	"Cesar",
	"Chocó",
	"Córdoba",
	"Cundinamarca",
	"Guainía",
	"Guaviare",
	"Huila",
	"La Guajira",
	"Magdalena",
	"Meta",
	"Nariño",
	"Norte de Santander",
	"Putumayo",
	"Quindío",
	"Risaralda",
	"San Andrés y Providencia",
	"Santander",
	"Sucre",
	"Tolima",
	"Valle del Cauca",
	"Vaupés",
	"Vichada",
}

// departmentReplacements corrects the short forms and legacy names that show
// up in extracts. Keys are normalized upper-case input.
var departmentReplacements = map[string]string{
	"BOGOTA":            "Bogotá D.C.",
	"BOGOTA DC":         "Bogotá D.C.",
	"BOGOTA D.C":        "Bogotá D.C.",
	"SANTAFE DE BOGOTA": "Bogotá D.C.",
	"VALLE":             "Valle del Cauca",
	"NORTE SANTANDER":   "Norte de Santander",
	"N. DE SANTANDER":   "Norte de Santander",
	"SAN ANDRES":        "San Andrés y Providencia",
	"GUAJIRA":           "La Guajira",
}

func departmentChoices() engine.ChoiceSpec {
	return engine.ChoiceSpec{
		Values:       departments,
		Replacements: departmentReplacements,
	}
}
