package model

// Result is the outcome of one checkout attempt. Errors is non-empty
// exactly when Completed is false.
type Result struct {
	Completed bool     `json:"completed"`
	Errors    []string `json:"errors,omitempty"`
}

func Completed() Result {
	return Result{Completed: true}
}

func Failed(errs ...string) Result {
	return Result{Completed: false, Errors: errs}
}
