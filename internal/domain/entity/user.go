package entity

// User is a marketplace user document. Roles gate which product audiences
// the user can see in listings.
type User struct {
	Email     string   `json:"email" firestore:"email"`
	FirstName string   `json:"firstName" firestore:"firstName"`
	LastName  string   `json:"lastName" firestore:"lastName"`
	Roles     []string `json:"roles" firestore:"roles"`
	Status    string   `json:"status" firestore:"status"`
}
