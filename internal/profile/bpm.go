package profile

import "github.com/excelsior/engine/internal/engine"

func init() {
	registerBPMExpedientes()
}

// registerBPMExpedientes covers the BPM fiscalization-expedient extract. Its
// headers come straight from the workflow tool, so they keep the '#' and
// parenthesis conventions the canonicalizer leaves untouched.
func registerBPMExpedientes() {
	Register(Profile{
		Key:         "bpm-expedientes",
		Agency:      "BPM",
		Label:       "BPM Expedientes",
		Description: "Expedientes de fiscalización del sistema BPM",
		Spec: engine.Spec{
			Schema: engine.ReferenceSchema{
				"ORDEN",
				"EXPEDIENTE_(ANTIGUO)",
				"TIPO_EXPEDIENTE",
				"ID_EXPEDIENTE_ECM",
				"NOMBRE_ARCHIVO",
				"MES_REPORTE",
				"FECHA_REPARTO",
				"ANO_REPARTO",
				"ANO_GESTION",
				"TIPO_DOC_IDENTIFICACION_APORTANTE",
				"NO_CC_O_NIT_APORTANTE",
				"NOMBRES_Y_O_RAZON_SOCIAL_APORTANTE",
				"TIPO_APORTANTE",
				"TAMANO",
				"#_EMPLEADOS",
				"DIRECCION_RUT",
				"MUNICIPIO_RUT",
				"DPTO_RUT",
				"TELEFONO",
				"EMAIL",
				"NOMBRES_Y_APELLIDOS_REP_LEGAL",
				"CC_O_NIT_REP_LEGAL",
				"TELEFONO_REP_LEGAL",
				"NOMBRE_REMITENTE",
				"DENUNCIANTE___NOMBRES_Y_APELLIDOS_Y_O_RAZON_SOCIAL",
				"CC_O_NIT_DENUNCIANTE",
				"HALLAZGO___DENUNCIA",
				"PROGRAMA",
				"ANO_PROGRAMA",
				"NOMBRE_ACTIVIDAD_CIIU",
				"NOMBRE_SECCION_CIIU",
				"ESTADO",
			},
			Aliases: engine.AliasTable{
				"EXPEDIENTE_ANTIGUO": "EXPEDIENTE_(ANTIGUO)",
				"NIT_APORTANTE":      "NO_CC_O_NIT_APORTANTE",
				"RAZON_SOCIAL":       "NOMBRES_Y_O_RAZON_SOCIAL_APORTANTE",
				"NO_EMPLEADOS":       "#_EMPLEADOS",
				"NUMERO_EMPLEADOS":   "#_EMPLEADOS",
				"DEPTO_RUT":          "DPTO_RUT",
				"DEPARTAMENTO_RUT":   "DPTO_RUT",
				"CORREO":             "EMAIL",
				"DENUNCIANTE":        "DENUNCIANTE___NOMBRES_Y_APELLIDOS_Y_O_RAZON_SOCIAL",
			},
			Types: engine.TypeMapping{
				"MES_REPORTE":   engine.TypeDate,
				"FECHA_REPARTO": engine.TypeDate,

				"ORDEN":       engine.TypeInteger,
				"ANO_REPARTO": engine.TypeInteger,
				"ANO_GESTION": engine.TypeInteger,
				"#_EMPLEADOS": engine.TypeInteger,

				"NO_CC_O_NIT_APORTANTE": engine.TypeNIT,
				"CC_O_NIT_REP_LEGAL":    engine.TypeNIT,
				"CC_O_NIT_DENUNCIANTE":  engine.TypeNIT,

				"TELEFONO":           engine.TypePhone,
				"TELEFONO_REP_LEGAL": engine.TypePhone,
				"EMAIL":              engine.TypeEmail,

				"DPTO_RUT": engine.TypeFuzzyChoice,
			},
			Choices: map[string]engine.ChoiceSpec{
				"DPTO_RUT": departmentChoices(),
			},
		},
	})
}
