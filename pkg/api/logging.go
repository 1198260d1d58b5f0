package api

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// HandleLogError logs errors intercepted by a logging decorator, unless they match one of the ignored errors
func HandleLogError(packageName, interfaceName, funcName string, err error, ignoredErrors ...error) {
	if err == nil {
		return
	}
	for _, e := range ignoredErrors {
		if errors.Is(err, e) {
			return
		}
	}

	log.Debug().
		Err(err).
		Str("package", packageName).
		Str("interface", interfaceName).
		Str("func", funcName).
		Msgf("%v.%v.%v decorator intercepted error", packageName, interfaceName, funcName)
}
