package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Login    string `json:"login"    validate:"required,min=3,max=30,login_chars"`
	Password string `json:"password" validate:"required,min=8,max=50,password_strength"`
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type validateResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}
