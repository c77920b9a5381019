package auth

import (
	"errors"

	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain"
)

// Clasificaciones visibles para el usuario de un intento de autenticación.
// Vocabulario cerrado, deliberadamente más grueso que el detalle del backend.
const (
	ClassificationInvalidCredentials = "Invalid Credentials"
	ClassificationSomethingWentWrong = "Something went wrong."
)

// CredentialSigner puerto hacia el backend de autenticación.
type CredentialSigner interface {
	SignIn(provider string, in dto.LoginRequest) (*dto.SessionResponse, error)
}

// Dispatcher reenvía credenciales al backend bajo el proveedor fijo y
// clasifica el resultado.
type Dispatcher struct {
	signer CredentialSigner
}

// NewDispatcher construye el despachador de credenciales.
func NewDispatcher(signer CredentialSigner) *Dispatcher {
	return &Dispatcher{signer: signer}
}

// Authenticate reenvía el formulario al proveedor de credenciales. prev es la
// clasificación del intento anterior; forma parte del contrato del caller y no
// se usa.
//
// Éxito: clasificación vacía y la sesión emitida. Fallo de autenticación
// reconocido (*domain.AuthError): clasificación acotada, sin error. Cualquier
// otro fallo se devuelve sin modificar; el caller debe tratarlo como fatal,
// no como error de formulario.
func (d *Dispatcher) Authenticate(prev string, form dto.LoginRequest) (string, *dto.SessionResponse, error) {
	session, err := d.signer.SignIn(ProviderCredentials, form)
	if err == nil {
		return "", session, nil
	}
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Type {
		case domain.AuthErrorCredentialsSignin:
			return ClassificationInvalidCredentials, nil, nil
		default:
			return ClassificationSomethingWentWrong, nil, nil
		}
	}
	return "", nil, err
}
