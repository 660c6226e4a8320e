package services

// Services holds all the service instances
type Services struct {
	AuthService      *AuthService
	UserService      *UserService
	ClassService     *ClassService
	SubjectService   *SubjectService
	ResourceService  *ResourceService
	PostService      *PostService
	MessageService   *MessageService
	TimetableService *TimetableService
}
