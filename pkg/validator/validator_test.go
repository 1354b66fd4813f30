package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultProps struct {
	CorrectAnswers int    `validate:"min=0,ltefield=TotalQuestions"`
	TotalQuestions int    `validate:"min=0"`
	GameLabel      string `validate:"required,max=10"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(resultProps{CorrectAnswers: 12, TotalQuestions: 10})
	require.Error(t, err)

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "Respuestas correctas no puede superar Preguntas totales")
	assert.Contains(t, msg, "Tipo de juego es obligatorio")
}

func TestFormatValidationErrorPlainError(t *testing.T) {
	assert.Equal(t, "boom", FormatValidationError(errors.New("boom")))
}
