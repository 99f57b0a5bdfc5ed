package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/myfit/pkg/httputil"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusConflict, "exercise has logged sets", errors.New("fk violation"))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, httputil.ErrorResponse{Code: 409, Error: "exercise has logged sets", Details: "fk violation"}, resp)
}

func TestWriteValidationError(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteValidationError(rr, "Esse alimento já existe na sua lista.")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Esse alimento já existe na sua lista."}`, rr.Body.String())
}

func TestWriteJSONResponseNilBody(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusOK, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}
