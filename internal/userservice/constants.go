package userservice

const (
	// Error messages for user service operations
	ErrFailedToHashPassword = "failed to hash password" // #nosec G101
	ErrFailedToRegisterUser = "failed to register user"
	ErrRetrievingUser       = "error retrieving user"
	ErrFailedToUpdateUser   = "failed to update user"
	ErrFailedToDeleteUser   = "failed to delete user"
	ErrCheckingMovie        = "error checking movie"
	ErrUpdatingFavorites    = "error updating favorites"
)
