package dto

// AssignRoleRequest is the admin request approving a user with a role.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,rolevalue" example:"STUDENT"`
}

// UpdateProfileRequest updates the caller's own profile fields.
type UpdateProfileRequest struct {
	FullName  string  `json:"fullName" binding:"required,min=2,max=100"`
	BirthDate *string `json:"birthDate,omitempty" example:"2001-07-15"`
	Gender    *string `json:"gender,omitempty"`
}

// UpdateSpecializationRequest updates a tutor's or student's
// specialization text.
type UpdateSpecializationRequest struct {
	Specialization string `json:"specialization" binding:"required,max=200"`
}

// UserListResponse is a paginated user listing.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
