package handler

var (
	RegisterUser   = "POST /api/users/register"
	LoginUser      = "POST /api/users/login"
	GetUsers       = "GET /api/users"
	GetUserByID    = "GET /api/users/{id}"
	AddContact     = "POST /api/contacts"
	GetContacts    = "GET /api/contacts"
	GetContactByID = "GET /api/contacts/{id}"
	UpdateContact  = "PUT /api/contacts/{id}"
	DeleteContact  = "DELETE /api/contacts/{id}"
)
