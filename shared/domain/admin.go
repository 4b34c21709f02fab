package domain

// Admin is the identity carried by an admin access token.
type Admin struct {
	Name string
}
