package profile

import "github.com/excelsior/engine/internal/engine"

func init() {
	registerColjuegosDisciplinarios()
}

func registerColjuegosDisciplinarios() {
	Register(Profile{
		Key:         "coljuegos-disciplinarios",
		Agency:      "COLJUEGOS",
		Label:       "COLJUEGOS Disciplinarios",
		Description: "Procesos disciplinarios de Coljuegos",
		Spec: engine.Spec{
			Schema: engine.ReferenceSchema{
				"NOMBRE_ARCHIVO",
				"MES_REPORTE",
				"EXPEDIENTE",
				"FECHA_DE_RADICACION",
				"FECHA_DE_LOS_HECHOS",
				"FECHA_DE_INDAGACION_PRELIMINAR",
				"FECHA_DE_INVESTIGACION_DISCIPLINARIA",
				"IMPLICADO",
				"DOCUMENTO_DEL_IMPLICADO",
				"DEPARTAMENTO_DE_LOS_HECHOS",
				"CIUDAD_DE_LOS_HECHOS",
				"DIRECCION_SECCIONAL",
				"DEPENDENCIA",
				"PROCESO",
				"SUBPROCESO",
				"PROCEDIMIENTO",
				"CARGO",
				"ORIGEN",
				"CONDUCTA",
				"ETAPA_PROCESAL",
				"FECHA_DE_FALLO",
				"SANCION_IMPUESTA",
				"HECHOS",
				"DECISION_DE_LA_INVESTIGACION",
				"TIPO_DE_PROCESO_AFECTADO",
				"SENALADOS_O_VINCULADOS_CON_LA_INVESTIGACION",
				"ADECUACION_TIPICA",
				"ABOGADO",
				"SENTIDO_DEL_FALLO",
				"QUEJOSO",
				"DOC_QUEJOSO",
				"TIPO_DE_PROCESO",
				"FECHA_CITACION",
				"FECHA_DE_CARGOS",
				"FECHA_DE_CIERRE_INVESTIGACION",
			},
			Aliases: engine.AliasTable{
				"NO_EXPEDIENTE":              "EXPEDIENTE",
				"DOCUMENTO_IMPLICADO":        "DOCUMENTO_DEL_IMPLICADO",
				"DEPARTAMENTO":               "DEPARTAMENTO_DE_LOS_HECHOS",
				"CIUDAD":                     "CIUDAD_DE_LOS_HECHOS",
				"FECHA_DE_PLIEGO_DE__CARGOS": "FECHA_DE_CARGOS",
			},
			Types: engine.TypeMapping{
				"FECHA_DE_RADICACION":                  engine.TypeDate,
				"FECHA_DE_LOS_HECHOS":                  engine.TypeDate,
				"FECHA_DE_INDAGACION_PRELIMINAR":       engine.TypeDate,
				"FECHA_DE_INVESTIGACION_DISCIPLINARIA": engine.TypeDate,
				"FECHA_DE_FALLO":                       engine.TypeDate,
				"FECHA_CITACION":                       engine.TypeDate,
				"FECHA_DE_CARGOS":                      engine.TypeDate,
				"FECHA_DE_CIERRE_INVESTIGACION":        engine.TypeDate,

				"DOCUMENTO_DEL_IMPLICADO": engine.TypeNIT,

				"DEPARTAMENTO_DE_LOS_HECHOS": engine.TypeFuzzyChoice,
				"DIRECCION_SECCIONAL":        engine.TypeFuzzyChoice,
				"PROCESO":                    engine.TypeFuzzyChoice,
			},
			Choices: map[string]engine.ChoiceSpec{
				"DEPARTAMENTO_DE_LOS_HECHOS": departmentChoices(),
				"DIRECCION_SECCIONAL": {
					Values: []string{
						"Gerencia Control a las Operaciones Ilegales",
						"Gerencia de Cobro",
						"Gerencia Financiera",
						"Gerencia Seguimiento Contractual",
						"Vicepresidencia de Desarrollo Organizacional",
						"Vicepresidencia de Operaciones",
						"Vicepresidencia Desarrollo Comercial",
					},
					Replacements: map[string]string{
						"GERENCIA COBRO": "Gerencia de Cobro",
						"VP OPERACIONES": "Vicepresidencia de Operaciones",
					},
				},
				"PROCESO": {
					Values: []string{
						"Cobro Coactivo",
						"Contratación Misional",
						"Control",
						"Control Operaciones Ilegales",
						"Gestión Jurídica",
						"Incumplimiento Contractual",
						"Seguimiento Contractual",
						"Segunda Instancia",
					},
					Replacements: map[string]string{
						"JURIDICA": "Gestión Jurídica",
					},
				},
			},
		},
	})
}
