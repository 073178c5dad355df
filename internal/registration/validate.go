package registration

const (
	MsgRequired = "This field is required"
	MsgRole     = "Please select a role"
	MsgMismatch = "Passwords do not match"
)

// Validate checks the account step. It reports every empty account field, a
// missing role and a password mismatch. Values are not checked for format.
func Validate(d Draft, role Role) Errors {
	errs := Errors{}
	for _, f := range AccountFields {
		if d[f.Name] == "" {
			errs[f.Name] = MsgRequired
		}
	}
	if role == RoleNone {
		errs["role"] = MsgRole
	}
	if d["password"] != d["confirmPassword"] {
		errs["confirmPassword"] = MsgMismatch
	}
	return errs
}

// ValidateDetails checks the required inputs of the details step for role.
func ValidateDetails(d Draft, role Role) Errors {
	errs := Errors{}
	if role == RoleNone {
		errs["role"] = MsgRole
		return errs
	}
	for _, f := range DetailFields(role) {
		if f.Required && d[f.Name] == "" {
			errs[f.Name] = MsgRequired
		}
	}
	return errs
}
