package profile

import "github.com/excelsior/engine/internal/engine"

func init() {
	registerUGPPAfiliaciones()
}

// registerUGPPAfiliaciones covers the UGPP contribution-process extract. It
// is the only format that carries contact and monetary columns, so it
// exercises the email, phone and percentage validators.
func registerUGPPAfiliaciones() {
	Register(Profile{
		Key:         "ugpp-procesos",
		Agency:      "UGPP",
		Label:       "UGPP Procesos",
		Description: "Procesos pensionales y parafiscales de la UGPP",
		Spec: engine.Spec{
			Schema: engine.ReferenceSchema{
				"NUMERO_EXPEDIENTE",
				"FECHA_RADICACION",
				"TIPO_PROCESO",
				"ESTADO_PROCESO",
				"NIT_EMPRESA",
				"RAZON_SOCIAL",
				"DIRECCION_EMPRESA",
				"TELEFONO_EMPRESA",
				"EMAIL_EMPRESA",
				"REPRESENTANTE_LEGAL",
				"DOCUMENTO_REPRESENTANTE",
				"TIPO_DOCUMENTO",
				"DESCRIPCION_PROCESO",
				"FUNCIONARIO_ASIGNADO",
				"FECHA_ASIGNACION",
				"FECHA_VENCIMIENTO",
				"OBSERVACIONES",
				"DEPARTAMENTO",
				"MUNICIPIO",
				"REGIMEN_PENSIONAL",
				"ESTADO_AFILIACION",
				"FECHA_AFILIACION",
				"SALARIO_BASE",
				"PORCENTAJE_APORTE",
				"VALOR_APORTE",
				"PERIODO_APORTE",
				"ESTADO_PAGO",
				"FECHA_PAGO",
				"VALOR_PAGADO",
			},
			Aliases: engine.AliasTable{
				"EXPEDIENTE":     "NUMERO_EXPEDIENTE",
				"NIT":            "NIT_EMPRESA",
				"NOMBRE_EMPRESA": "RAZON_SOCIAL",
				"TELEFONO":       "TELEFONO_EMPRESA",
				"CORREO":         "EMAIL_EMPRESA",
				"EMAIL":          "EMAIL_EMPRESA",
				"DIRECCION":      "DIRECCION_EMPRESA",
				"PORCENTAJE":     "PORCENTAJE_APORTE",
			},
			Types: engine.TypeMapping{
				"FECHA_RADICACION":  engine.TypeDate,
				"FECHA_ASIGNACION":  engine.TypeDate,
				"FECHA_VENCIMIENTO": engine.TypeDate,
				"FECHA_AFILIACION":  engine.TypeDate,
				"FECHA_PAGO":        engine.TypeDate,

				"NIT_EMPRESA":             engine.TypeNIT,
				"DOCUMENTO_REPRESENTANTE": engine.TypeNIT,

				"TELEFONO_EMPRESA": engine.TypePhone,
				"EMAIL_EMPRESA":    engine.TypeEmail,

				"SALARIO_BASE":      engine.TypeFloat,
				"VALOR_APORTE":      engine.TypeFloat,
				"VALOR_PAGADO":      engine.TypeFloat,
				"PORCENTAJE_APORTE": engine.TypePercentage,

				"PERIODO_APORTE": engine.TypeInteger,

				"DEPARTAMENTO":      engine.TypeFuzzyChoice,
				"ESTADO_PROCESO":    engine.TypeFuzzyChoice,
				"ESTADO_AFILIACION": engine.TypeChoice,
				"ESTADO_PAGO":       engine.TypeChoice,
			},
			Choices: map[string]engine.ChoiceSpec{
				"DEPARTAMENTO": departmentChoices(),
				"ESTADO_PROCESO": {
					Values: []string{
						"Radicado", "En Gestión", "Suspendido", "Archivado", "Finalizado",
					},
					Replacements: map[string]string{
						"EN GESTION": "En Gestión",
						"GESTION":    "En Gestión",
					},
				},
				"ESTADO_AFILIACION": {
					Values: []string{"Activa", "Inactiva", "Suspendida"},
				},
				"ESTADO_PAGO": {
					Values: []string{"Pagado", "Pendiente", "Vencido"},
				},
			},
			Ranges: map[string]engine.PercentRange{
				"PORCENTAJE_APORTE": {Min: 0, Max: 100},
			},
		},
	})
}
