package domain

// Tipos de fallo reconocidos de la capa de autenticación. Cualquier error que no
// sea un *AuthError se considera fallo no reconocido y debe propagarse tal cual.
const (
	AuthErrorCredentialsSignin = "CredentialsSignin" // email o password incorrectos
	AuthErrorAccessDenied      = "AccessDenied"      // cuenta inactiva o suspendida
)

// AuthError señala un fallo de autenticación con un tipo acotado, para que el
// despachador de credenciales pueda clasificarlo sin exponer el detalle interno.
type AuthError struct {
	Type string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return "auth: " + e.Type + ": " + e.Err.Error()
	}
	return "auth: " + e.Type
}

func (e *AuthError) Unwrap() error { return e.Err }
