package profile

import "github.com/excelsior/engine/internal/engine"

func init() {
	registerDIANNotificaciones()
}

// registerDIANNotificaciones describes the DIAN acto-administrativo
// notification extract, the widest of the agency formats.
func registerDIANNotificaciones() {
	Register(Profile{
		Key:         "dian-notificaciones",
		Agency:      "DIAN",
		Label:       "DIAN Notificaciones",
		Description: "Notificaciones de actos administrativos de la DIAN",
		Spec: engine.Spec{
			Schema: engine.ReferenceSchema{
				"PLAN_IDENTIF_ACTO",
				"CODIGO_ADMINISTRACION",
				"SECCIONAL",
				"CODIGO_DEPENDENCIA",
				"DEPENDENCIA",
				"ANO_CALENDARIO",
				"CODIGO_ACTO",
				"DESCRIPCION_ACTO",
				"ANO_ACTO",
				"CONSECUTIVO_ACTO",
				"FECHA_ACTO",
				"CUANTIA_ACTO",
				"NIT",
				"RAZON_SOCIAL",
				"DIRECCION",
				"PLANILLA_REMISION",
				"FECHA_PLANILLA_REMISION",
				"FUNCIONARIO_ENVIA",
				"FECHA_CITACION",
				"PLANILLA_CORR",
				"FECHA_PLANILLA_CORR",
				"FECHA_NOTIFICACION",
				"FECHA_EJECUTORIA",
				"GUIA",
				"COD_ESTADO",
				"ESTADO_NOTIFICACION",
				"COD_NOTIFICACION",
				"MEDIO_NOTIFICACION",
				"NUMERO_EXPEDIENTE",
				"TIPO_DOCUMENTO",
				"PERI_IMPUESTO",
				"PERI_PERIODO",
				"NOMBRE_APLICACION",
				"PAIS_COD_NUM_PAIS",
				"PAIS",
				"MUNI_CODIGO_DEPART",
				"DEPARTAMENTO",
				"MUNI_CODIGO_MUNICI",
				"MUNICIPIO",
				"REGIMEN",
				"FECHA_LEVANTE",
				"MOTIVO_LEVANTE",
				"NORMATIVIDAD",
				"FUNCIONARIO_RECIBE",
				"PLANILLA_REMI_ARCHIVO",
				"FECHA_PLANILLA_REMI_ARCHIVO",
			},
			Aliases: engine.AliasTable{
				"COPL_PLANILLA_REMI":  "PLANILLA_REMISION",
				"COPL_PLANILLA_CORR":  "PLANILLA_CORR",
				"PIA":                 "PLAN_IDENTIF_ACTO",
				"SECC":                "SECCIONAL",
				"DEP":                 "CODIGO_DEPENDENCIA",
				"ANO":                 "ANO_CALENDARIO",
				"COD_ACTO":            "CODIGO_ACTO",
				"DESCRIPCION":         "DESCRIPCION_ACTO",
				"DESC_NOTIFICACION":   "DESCRIPCION_ACTO",
				"CONSECUTIVO":         "CONSECUTIVO_ACTO",
				"CUANTIA":             "CUANTIA_ACTO",
				"PLANILLA_REMI":       "PLANILLA_REMISION",
				"FECHA_PLANILLA_REMI": "FECHA_PLANILLA_REMISION",
				"NUMERO_DE_GUIA":      "GUIA",
				"ESTADO":              "ESTADO_NOTIFICACION",
				"COD_NOTI":            "COD_NOTIFICACION",
				"TIPO_DOC":            "TIPO_DOCUMENTO",
				"IMPUESTO":            "PERI_IMPUESTO",
				"PERIODO":             "PERI_PERIODO",
				"DEPTO":               "MUNI_CODIGO_DEPART",
				"NOMBRE_DEPTO":        "DEPARTAMENTO",
			},
			Types: engine.TypeMapping{
				"PLAN_IDENTIF_ACTO":     engine.TypeInteger,
				"CODIGO_ADMINISTRACION": engine.TypeInteger,
				"CODIGO_DEPENDENCIA":    engine.TypeInteger,
				"ANO_CALENDARIO":        engine.TypeInteger,
				"CODIGO_ACTO":           engine.TypeInteger,
				"ANO_ACTO":              engine.TypeInteger,
				"CONSECUTIVO_ACTO":      engine.TypeInteger,
				"PLANILLA_REMISION":     engine.TypeInteger,
				"PLANILLA_CORR":         engine.TypeInteger,
				"NUMERO_EXPEDIENTE":     engine.TypeInteger,
				"PERI_IMPUESTO":         engine.TypeInteger,
				"PERI_PERIODO":          engine.TypeInteger,
				"PAIS_COD_NUM_PAIS":     engine.TypeInteger,
				"MUNI_CODIGO_DEPART":    engine.TypeInteger,
				"MUNI_CODIGO_MUNICI":    engine.TypeInteger,
				"PLANILLA_REMI_ARCHIVO": engine.TypeInteger,

				"CUANTIA_ACTO": engine.TypeFloat,

				"FECHA_ACTO":                  engine.TypeDate,
				"FECHA_PLANILLA_REMISION":     engine.TypeDate,
				"FECHA_CITACION":              engine.TypeDate,
				"FECHA_PLANILLA_CORR":         engine.TypeDate,
				"FECHA_NOTIFICACION":          engine.TypeDate,
				"FECHA_EJECUTORIA":            engine.TypeDate,
				"FECHA_LEVANTE":               engine.TypeDate,
				"FECHA_PLANILLA_REMI_ARCHIVO": engine.TypeDate,

				"NIT": engine.TypeNIT,

				"ESTADO_NOTIFICACION": engine.TypeFuzzyChoice,
				"DEPARTAMENTO":        engine.TypeFuzzyChoice,
				"DEPENDENCIA":         engine.TypeFuzzyChoice,
			},
			Choices: map[string]engine.ChoiceSpec{
				"ESTADO_NOTIFICACION": {
					Values: []string{
						"Notificado", "Pendiente", "Devuelto", "Cancelado", "En Trámite",
					},
					Replacements: map[string]string{
						"NOTIF":      "Notificado",
						"EN TRAMITE": "En Trámite",
						"TRAMITE":    "En Trámite",
						"DEVUELTA":   "Devuelto",
					},
				},
				"DEPARTAMENTO": departmentChoices(),
				"DEPENDENCIA": {
					Values: []string{
						"Nivel Central", "Dirección Seccional",
					},
					Replacements: map[string]string{
						"CENTRAL":   "Nivel Central",
						"SECCIONAL": "Dirección Seccional",
					},
				},
			},
		},
	})
}
