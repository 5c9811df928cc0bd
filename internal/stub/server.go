package stub

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"

	"github.com/cetler74/linkuupapp-sub002/config"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/service"
)

const tokenTTL = 12 * time.Hour

// Params holds dependencies for the stub server, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

// Server is the local stub API. It listens on the configured port in
// development and doubles as an http.Handler for integration tests.
type Server struct {
	cfg    *config.StubConfig
	store  *Store
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer is the constructor for Server. The owner account from the
// config is seeded with a bcrypt-hashed password.
func NewServer(params Params) (*Server, error) {
	cfg := params.Config.Stub
	if cfg == nil {
		return nil, errors.New("stub configuration is missing")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("stub secret key must be provided")
	}

	hash, err := params.Hasher.Hash(cfg.OwnerPassword)
	if err != nil {
		return nil, errors.Wrap(err, "hash owner password")
	}

	store := NewStore(Owner{
		ID:           uuid.New(),
		Email:        cfg.OwnerEmail,
		PasswordHash: hash,
		Plan:         entity.NormalizePlan(cfg.Plan),
	})

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())

	srv := &Server{
		cfg:    cfg,
		store:  store,
		logger: params.Logger,
		echo:   echoServer,
	}
	srv.registerRoutes(params.Hasher)

	return srv, nil
}

// Store exposes the seeded state for tests.
func (s *Server) Store() *Store {
	return s.store
}

// Handler returns the stub as an http.Handler for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Serve starts the stub on the configured port and blocks.
func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.Port))
	s.logger.Info("starting stub api", slog.String("hostPort", hostPort))
	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve stub api")
	}

	return nil
}

// Shutdown stops the stub gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down stub api")

	return errors.WithStack(s.echo.Shutdown(ctx))
}

func (s *Server) registerRoutes(hasher service.PasswordHasher) {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.echo.POST("/auth/login", s.login(hasher))

	api := s.echo.Group("/api")
	api.Use(s.authenticate)
	{
		api.POST("/places/:placeID/employees", s.createEmployee)
		api.GET("/places/:placeID/employees", s.listEmployees)
		api.GET("/places/:placeID/services", s.listServices)

		api.GET("/employees/:id", s.getEmployee)
		api.PUT("/employees/:id", s.updateEmployee)
		api.PUT("/employees/:id/services", s.assignServices)
		api.GET("/employees/:id/services", s.employeeServices)
		api.PUT("/employees/:id/schedule", s.replaceSchedule)
		api.GET("/employees/:id/schedule", s.getSchedule)
		api.POST("/employees/:id/photo", s.uploadPhoto)
		api.DELETE("/employees/:id/photo", s.deletePhoto)
	}
}

// authenticate validates the bearer token the way the production API does.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return flatError(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return flatError(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(s.cfg.SecretKey), nil
		})
		if err != nil || !token.Valid {
			return flatError(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		return next(c)
	}
}

// issueToken signs an access token for the owner.
func (s *Server) issueToken(ownerID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": ownerID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.cfg.SecretKey))
}
