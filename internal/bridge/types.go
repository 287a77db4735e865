package bridge

// Definition describes a bridge module and its methods
type Definition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capability  string   `json:"capability"`
	Methods     []Method `json:"methods"`
}

// Method describes a callable method
type Method struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter describes a method argument
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Result is the JSON-serializable outcome of an invocation
type Result struct {
	Success bool        `json:"success"`
	Value   interface{} `json:"value"`
	Error   *string     `json:"error,omitempty"`
}

func success(value interface{}) (*Result, error) {
	return &Result{Success: true, Value: value}, nil
}

func failure(message string) (*Result, error) {
	msg := message
	return &Result{Success: false, Error: &msg}, nil
}

func noArgs() []Parameter {
	return []Parameter{}
}
