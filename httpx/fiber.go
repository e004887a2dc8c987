/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"errors"

	"dirpx.dev/apicem"
	"github.com/gofiber/fiber/v3"
)

// FiberErrorHandler returns a fiber.ErrorHandler rendering errors with w.
//
//	app := fiber.New(fiber.Config{ErrorHandler: httpx.FiberErrorHandler(w)})
//
// Taxonomy errors use the mapped status. A *fiber.Error (unknown route,
// body too large, ...) keeps its own status and is rendered as a base error
// with the fiber message; any other error is rendered as a base error.
func FiberErrorHandler(w Writer) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		status, body := w.Render(err)

		var fe *fiber.Error
		if _, ok := apicem.AsFault(err); !ok && errors.As(err, &fe) {
			_, body = w.Render(apicem.Wrap(fe.Message, err))
			status = fe.Code
		}

		c.Set(fiber.HeaderContentType, ContentType)
		return c.Status(status).Send(body)
	}
}
