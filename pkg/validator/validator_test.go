package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginInput struct {
	Username string `validate:"notblank"`
	Password string `validate:"required,min=6"`
}

func TestValidateStruct_Valido(t *testing.T) {
	assert.Nil(t, ValidateStruct(loginInput{Username: "ana", Password: "secreto"}))
}

func TestValidateStruct_ReportaCampos(t *testing.T) {
	errs := ValidateStruct(loginInput{Username: "   ", Password: "123"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Username", errs[0].FailedField)
	assert.Equal(t, "notblank", errs[0].Tag)
	assert.Equal(t, "Password", errs[1].FailedField)
	assert.Equal(t, "6", errs[1].Value)
	assert.Equal(t, "Username: notblank, Password: min=6", Message(errs))
}
