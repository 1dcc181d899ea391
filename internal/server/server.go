// Package server AgriScan
//
// The AgriScan backend provides farmer accounts, community chat and crop
// problem reporting for the AgriScan mobile app.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/Decentr-net/go-api"

	"github.com/Chirag30Sharma/AgriScan-Backend/internal/filestore"
	"github.com/Chirag30Sharma/AgriScan-Backend/internal/storage"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

// the original backend accepted request bodies up to 10mb
const maxBodySize = 10 << 20

type server struct {
	s  storage.Storage
	fs *filestore.Store
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s storage.Storage, fs *filestore.Store, r chi.Router, timeout time.Duration) {
	r.Use(
		api.FileServerMiddleware("/docs", "static"),
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RequestIDMiddleware,
		api.RecovererMiddleware,
		api.TimeoutMiddleware(timeout),
		api.BodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s:  s,
		fs: fs,
	}

	r.Route("/user", func(r chi.Router) {
		r.Post("/registration", srv.register)
		r.Post("/login", srv.login)
		r.Get("/chat", srv.listChats)
		r.Post("/chat", srv.createChat)
		r.Post("/chat/{chatID}/like", srv.likeChat)
		r.Post("/chat/{chatID}/dislike", srv.dislikeChat)
	})

	r.Post("/upload/image", srv.uploadImage)
	r.Post("/upload/file", srv.uploadFile)
	r.Post("/history", srv.history)
	r.Post("/changepassword", srv.changePassword)
}
