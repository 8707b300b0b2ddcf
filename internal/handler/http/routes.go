package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)

		r.Post("/users/", h.register)
		r.Post("/login/", h.login)
		r.Get("/users/{id}/", h.getUser)
		r.Get("/users/{id}/novels/", h.listUserNovels)
		r.Get("/users/{id}/wishlist/", h.listUserWishlist)

		r.Get("/novels/", h.listNovels)
		r.Get("/novels/search/", h.searchNovels)
		r.Get("/novels/{id}/", h.getNovel)
		r.Get("/novels/{id}/download/", h.downloadNovel)
		r.Get("/novels/{id}/likes/", h.countLikes)
		r.Get("/novels/{id}/comments/", h.listComments)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/users/profile/", h.updateProfile)
		r.Delete("/users/", h.deleteSelf)
		r.Put("/users/{id}/", h.updateUser)
		r.Delete("/users/{id}/", h.deleteUser)

		r.Post("/novels/", h.uploadNovel)
		r.Put("/novels/{id}/", h.updateNovel)
		r.Delete("/novels/{id}/", h.deleteNovel)
		r.Post("/novels/like/", h.likeNovel)
		r.Post("/novels/comment/", h.commentNovel)

		r.Post("/wishlist/", h.addToWishlist)
		r.Delete("/wishlist/{id}/", h.removeFromWishlist)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
