package invoices

// State resultado visible de una acción de mutación: errores por campo
// (mapeados al nombre del campo que falló) y/o un mensaje resumen.
// Un State vacío equivale a éxito sin redirección.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Outcome resultado de una acción: o bien un State para devolver al caller, o
// bien una redirección solicitada. La redirección la ejecuta el adaptador HTTP;
// para la acción es terminal (no hay trabajo después de pedirla).
type Outcome struct {
	State    *State
	Redirect string
}

// redirectTo construye el Outcome de éxito que transfiere el control a la vista.
func redirectTo(viewPath string) Outcome {
	return Outcome{Redirect: viewPath}
}

// failWith construye el Outcome de fallo con el State dado.
func failWith(state State) Outcome {
	return Outcome{State: &state}
}
