package filestorage

import "mime/multipart"

// Storage abstracts where uploaded files are kept.
type Storage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns the relative path recorded in the database.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	// DeleteFile removes a previously stored file. Deleting a missing
	// file is not an error.
	DeleteFile(filePath string) error
	// FullPath resolves a stored relative path to a filesystem path.
	FullPath(filePath string) string
}
