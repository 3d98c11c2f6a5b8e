package usecase

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/piresc/taxilake/internal/pkg/models"
)

var printer = message.NewPrinter(language.English)

func printUploadLine(w io.Writer, file string, size int64, bucket, key string) {
	printer.Fprintf(w, "Uploading %s (%d bytes) -> s3://%s/%s\n", file, size, bucket, key)
}

func printListing(w io.Writer, bucket string, objects []models.ObjectInfo) {
	printer.Fprintf(w, "\nVerifying objects in s3://%s:\n", bucket)
	for _, obj := range objects {
		printer.Fprintf(w, "  %s  (%d bytes)\n", obj.Key, obj.Size)
	}
}
