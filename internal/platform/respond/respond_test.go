// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/respond"
)

/*
TestError_AppError verifies the envelope for classified errors.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/users", nil)

	respond.Error(recorder, request, fmt.Errorf("wrapped: %w", apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "handle", Message: "Minimum 5 characters"},
	)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, apperr.CodeValidation, envelope.Code)
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "handle", envelope.Details[0].Field)
}

/*
TestError_HidesUnclassified ensures raw errors never leak to clients.
*/
func TestError_HidesUnclassified(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/users/janedoe", nil)

	respond.Error(recorder, request, errors.New(`relation "users.account" does not exist`))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "users.account")
}

/*
TestOK wraps data in the success envelope.
*/
func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]string{"message": "hi"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"message":"hi"}}`, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
}

func TestMessage(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Message(recorder, "janedoe was deleted")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"message":"janedoe was deleted"}}`, recorder.Body.String())
}
