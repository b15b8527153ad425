package supplier

type Supplier struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	INN         string `json:"inn"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}
