package registration

// Field describes one input of the wizard.
type Field struct {
	Name        string
	Label       string
	Type        string // input type; "textarea" renders a text area
	Placeholder string
	Required    bool
	Wide        bool // spans both form columns
}

// Secret reports whether the value must not be trimmed or logged.
func (f Field) Secret() bool { return f.Type == "password" }

// AccountFields are the inputs of the account step, all required.
var AccountFields = []Field{
	{Name: "firstName", Label: "First Name", Type: "text", Required: true},
	{Name: "lastName", Label: "Last Name", Type: "text", Required: true},
	{Name: "email", Label: "Email", Type: "email", Required: true},
	{Name: "mobile", Label: "Mobile", Type: "text", Required: true},
	{Name: "password", Label: "Password", Type: "password", Required: true},
	{Name: "confirmPassword", Label: "Confirm Password", Type: "password", Required: true},
}

var patientFields = []Field{
	{Name: "fatherName", Label: "Father's Name", Type: "text", Placeholder: "Father's Name", Required: true, Wide: true},
	{Name: "motherName", Label: "Mother's Name", Type: "text", Placeholder: "Mother's Name", Required: true},
	{Name: "dateOfBirth", Label: "Date of Birth", Type: "date", Required: true},
	{Name: "occupation", Label: "Occupation", Type: "text", Placeholder: "Occupation", Required: true},
	{Name: "city", Label: "City", Type: "text", Placeholder: "City", Required: true},
	{Name: "district", Label: "District", Type: "text", Placeholder: "District", Required: true},
	{Name: "state", Label: "State", Type: "text", Placeholder: "State", Required: true},
	{Name: "postalCode", Label: "Postal Code", Type: "text", Placeholder: "Postal Code", Required: true},
	{Name: "address", Label: "Full Address", Type: "textarea", Placeholder: "Full Address", Required: true, Wide: true},
}

var hospitalFields = []Field{
	{Name: "hospitalName", Label: "Hospital Name", Type: "text", Placeholder: "Hospital Name", Required: true},
	{Name: "licenseNumber", Label: "License Number", Type: "text", Placeholder: "License Number", Required: true},
	{Name: "website", Label: "Website", Type: "text", Placeholder: "Website (optional)"},
	{Name: "hospitalAddress", Label: "Full Hospital Address", Type: "textarea", Placeholder: "Full Hospital Address", Required: true, Wide: true},
}

// DetailFields returns the inputs of the details step for role.
func DetailFields(role Role) []Field {
	switch role {
	case Patient:
		return patientFields
	case Hospital:
		return hospitalFields
	default:
		return nil
	}
}

// DetailsTitle is the heading of the details step.
func DetailsTitle(role Role) string {
	if role == Patient {
		return "Patient Details"
	}
	return "Hospital Registration"
}
