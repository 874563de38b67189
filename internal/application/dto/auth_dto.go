package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token Bearer con vigencia de 24 horas.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"` // "Bearer"
	ExpiresIn int    `json:"expiresIn"` // segundos
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// StatsResponse conteos por entidad para GET /api/admin/stats.
type StatsResponse struct {
	Clients    int64 `json:"clientes"`
	Quotations int64 `json:"cotizaciones"`
	Projects   int64 `json:"negocios"`
	WorkOrders int64 `json:"ordenesTrabajo"`
	Invoices   int64 `json:"facturas"`
	Payments   int64 `json:"pagos"`
}
