package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"voyago/auth"
	"voyago/destinations"
	"voyago/experiences"
	"voyago/guides"
	"voyago/itinerary"
	"voyago/middleware"
	"voyago/ratelim"
	"voyago/search"
	"voyago/session"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddSearchRoutes(router *httprouter.Router) {
	router.POST("/api/search/flights", ratelim.RateLimit(search.SearchFlights))
	router.POST("/api/search/hotels", ratelim.RateLimit(search.SearchHotels))
}

func AddDestinationRoutes(router *httprouter.Router) {
	router.GET("/api/destinations", destinations.GetDestinations)
}

func AddSessionRoutes(router *httprouter.Router) {
	router.PUT("/api/session/search", session.PutSearchData)
	router.GET("/api/session/search", session.GetSearchData)
	router.PUT("/api/session/selections", session.PutSelections)
	router.GET("/api/session/selections", session.GetSelections)
	router.DELETE("/api/session", session.ClearSession)
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.POST("/api/itineraries/preview", ratelim.RateLimit(itinerary.PreviewItinerary))
	router.POST("/api/itineraries/export", ratelim.RateLimit(itinerary.ExportItinerary))
	router.POST("/api/itineraries", middleware.Authenticate(itinerary.SaveItinerary))
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.GET("/api/itineraries/:id", itinerary.GetItinerary)
	router.GET("/api/itineraries/:id/pdf", ratelim.RateLimit(itinerary.DownloadItinerary))
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(itinerary.DeleteItinerary))
}

func AddGuideRoutes(router *httprouter.Router) {
	router.GET("/api/guides", guides.GetGuides)
	router.GET("/api/guides/:id", guides.GetGuide)
	router.POST("/api/guides", middleware.Authenticate(guides.CreateGuide))
	router.POST("/api/guides/:id/like", ratelim.RateLimit(middleware.Authenticate(guides.ToggleLike)))
}

func AddExperienceRoutes(router *httprouter.Router) {
	router.POST("/api/experiences", middleware.Authenticate(experiences.CreateExperience))
	router.POST("/api/experiences/photo", ratelim.RateLimit(middleware.Authenticate(experiences.UploadPhoto)))
	router.GET("/api/experiences", experiences.GetExperiences)
	router.GET("/api/experiences/:id", experiences.GetExperience)
}
