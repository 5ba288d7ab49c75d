package contact

// ContactResponse is the body returned for every contact form submission,
// accepted or not. It is not wrapped in common.APIResponse.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
