package app

import (
	"log"
	"os"

	"github.com/monopay/monopay-api/internal/http/middleware"
)

func (a *application) InitErrorHandler() *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log.New(os.Stdout, "[monopay] ", log.LstdFlags))
}
