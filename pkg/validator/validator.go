package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", field)
	case "min", "gte":
		return fmt.Sprintf("%s debe ser como mínimo %s", field, fe.Param())
	case "max", "lte":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s admite como máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser como máximo %s", field, fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s no puede superar %s", field, getFieldName(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no es válido", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Days":           "Días de racha",
		"PreviousDays":   "Días de racha anteriores",
		"XPEarned":       "XP ganados",
		"CorrectAnswers": "Respuestas correctas",
		"TotalQuestions": "Preguntas totales",
		"GameLabel":      "Tipo de juego",
		"Ranking":        "Ranking",
		"Tab":            "Pestaña",
		"ExpandedWeek":   "Semana desplegada",
		"XP":             "XP",
		"Rank":           "Posición",
		"Name":           "Nombre",
		"Avatar":         "Avatar",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
