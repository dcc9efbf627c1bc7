package routers

import (
	"net/http"

	beego "github.com/beego/beego/v2/server/web"
	beectx "github.com/beego/beego/v2/server/web/context"
	"golang.org/x/time/rate"

	"github.com/LeitoBarrera/estudios_mid/controllers/errorhandler"
	internalcontrollers "github.com/LeitoBarrera/estudios_mid/internal/controllers"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
	rootservices "github.com/LeitoBarrera/estudios_mid/services"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	// El login se limita por proceso para frenar fuerza bruta simple.
	cfg := rootservices.GetConfig()
	loginLimiter := rate.NewLimiter(rate.Limit(cfg.LoginRatePorSeg), cfg.LoginRateBurst)
	beego.InsertFilter("/v1/auth/login", beego.BeforeRouter, func(ctx *beectx.Context) {
		if loginLimiter.Allow() {
			return
		}
		ctx.Output.SetStatus(http.StatusTooManyRequests)
		_ = ctx.Output.JSON(internalhelpers.Fail(http.StatusTooManyRequests, "demasiados intentos, espere un momento"), false, false)
	})

	beego.Router("/v1/auth/login", &internalcontrollers.AuthController{}, "post:PostLogin")
	beego.Router("/v1/auth/me", &internalcontrollers.AuthController{}, "get:GetMe")

	beego.Router("/v1/candidatos/me", &internalcontrollers.CandidatosController{}, "get:GetMe;patch:PatchMe")

	beego.Router("/v1/consentimientos/:estudioId", &internalcontrollers.ConsentimientosController{}, "get:GetEstado")
	beego.Router("/v1/consentimientos/:estudioId/firmar", &internalcontrollers.ConsentimientosController{}, "post:PostFirmar")
	beego.Router("/v1/consentimientos/:estudioId/habeas", &internalcontrollers.ConsentimientosController{}, "post:PostHabeas")
	beego.Router("/v1/consentimientos/:estudioId/terminos", &internalcontrollers.ConsentimientosController{}, "post:PostTerminos")

	beego.Router("/v1/academicos", &internalcontrollers.AcademicosController{}, "get:GetAll;post:Post")
	beego.Router("/v1/academicos/:id", &internalcontrollers.AcademicosController{}, "patch:Patch;delete:Delete")
	beego.Router("/v1/laborales", &internalcontrollers.LaboralesController{}, "get:GetAll;post:Post")
	beego.Router("/v1/laborales/:id", &internalcontrollers.LaboralesController{}, "patch:Patch;delete:Delete")

	beego.Router("/v1/documentos", &internalcontrollers.DocumentosController{}, "get:GetAll;post:Post")
	beego.Router("/v1/documentos/:id", &internalcontrollers.DocumentosController{}, "delete:Delete")

	beego.Router("/v1/estudios", &internalcontrollers.EstudiosController{}, "get:GetAll")
	beego.Router("/v1/estudios/abrir", &internalcontrollers.EstudiosController{}, "get:GetAbrir")
	beego.Router("/v1/estudios/:id", &internalcontrollers.EstudiosController{}, "get:GetOne")
	beego.Router("/v1/estudios/:id/resumen", &internalcontrollers.EstudiosController{}, "get:GetResumen")
	beego.Router("/v1/estudios/:id/resumen_pdf", &internalcontrollers.EstudiosController{}, "get:GetResumenPDF")
	beego.Router("/v1/estudios/:id/validar_masivo", &internalcontrollers.EstudiosController{}, "post:PostValidarMasivo")
	beego.Router("/v1/estudios/:id/items", &internalcontrollers.EstudiosController{}, "post:PostAgregarItem")
	beego.Router("/v1/estudios/:id/items/:itemId/validar", &internalcontrollers.EstudiosController{}, "post:PostValidarItem")
	beego.Router("/v1/estudios/:id/items/:itemId/hallazgo", &internalcontrollers.EstudiosController{}, "post:PostHallazgo")

	beego.Router("/v1/solicitudes", &internalcontrollers.SolicitudesController{}, "get:GetAll;post:Post")
	beego.Router("/v1/solicitudes/:id/invitar_candidato", &internalcontrollers.SolicitudesController{}, "post:PostInvitar")

	beego.Router("/v1/notificaciones", &internalcontrollers.NotificacionesController{}, "get:GetAll")
	beego.Router("/v1/notificaciones/marcar_todas", &internalcontrollers.NotificacionesController{}, "post:PostMarcarTodas")
	beego.Router("/v1/notificaciones/:id/abrir", &internalcontrollers.NotificacionesController{}, "post:PostAbrir")

	beego.Router("/v1/geo/departamentos", &internalcontrollers.GeoController{}, "get:GetDepartamentos")
	beego.Router("/v1/geo/municipios", &internalcontrollers.GeoController{}, "get:GetMunicipios")

	beego.Handler("/metrics", metrics.Handler())
}
