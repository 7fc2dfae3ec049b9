package http

import (
	"net/http"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/config"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/auth"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/catalog"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/contact"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/profile"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/settings"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/stats"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/whatsapp"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/handlers"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/httpjson"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/i18n"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/middleware"
)

type RouterDeps struct {
	Cfg         config.Config
	AuthClient  *fbauth.Client
	CatalogSvc  *catalog.Service
	SettingsSvc *settings.Service
	SettingsHub *settings.Hub
	ContactSvc  *contact.Service
	ProfileSvc  *profile.Service
	AuthSvc     *auth.Service
	StatsSvc    *stats.Service
	Uploads     *handlers.Uploads
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// ===== Locale export =====
	r.Get("/v1/i18n/{lang}", func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Normalize(chi.URLParam(r, "lang"))
		WriteJSON(w, 200, map[string]any{
			"lang": lang,
			"dir":  i18n.Dir(lang),
			"rtl":  i18n.IsRTL(lang),
			"dict": i18n.Dictionary(lang),
		})
	})

	// ===== Storefront: items and categories =====
	r.Get("/v1/items/{itemType}", func(w http.ResponseWriter, r *http.Request) {
		typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
		if !ok {
			Fail(w, 400, "unknown item type")
			return
		}
		items, err := d.CatalogSvc.ListItems(r.Context(), typ, r.URL.Query().Get("category"))
		if err != nil {
			status, msg := mapCatalogError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{
			"items":      items,
			"categories": catalog.AvailableCategories(items),
			"total":      len(items),
		})
	})

	r.Get("/v1/items/{itemType}/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
		if !ok {
			Fail(w, 400, "unknown item type")
			return
		}
		item, err := d.CatalogSvc.GetItem(r.Context(), typ, chi.URLParam(r, "itemId"))
		if err != nil {
			status, msg := mapCatalogError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, item)
	})

	// WhatsApp order deep link for one item. 409 when no number is
	// configured for the type; the storefront shows the message as a
	// blocking toast and must not fall back to a numberless link.
	r.Get("/v1/items/{itemType}/{itemId}/whatsapp-link", func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r)
		typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
		if !ok {
			Fail(w, 400, "unknown item type")
			return
		}
		item, err := d.CatalogSvc.GetItem(r.Context(), typ, chi.URLParam(r, "itemId"))
		if err != nil {
			status, msg := mapCatalogError(err)
			Fail(w, status, msg)
			return
		}
		numbers, err := d.SettingsSvc.WhatsAppNumbers(r.Context())
		if err != nil {
			Fail(w, 500, "internal error")
			return
		}
		link, err := whatsapp.OrderLink(numbers.ForType(string(typ)), item.DisplayName(lang), item.Seller, lang)
		if whatsapp.IsErrNumberNotConfigured(err) {
			Fail(w, 409, i18n.T(lang, "whatsapp.missing"))
			return
		}
		if err != nil {
			Fail(w, 500, "internal error")
			return
		}
		WriteJSON(w, 200, map[string]any{"url": link})
	})

	r.Get("/v1/categories/{itemType}", func(w http.ResponseWriter, r *http.Request) {
		typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
		if !ok {
			Fail(w, 400, "unknown item type")
			return
		}
		cats, err := d.CatalogSvc.Categories(r.Context(), typ)
		if err != nil {
			status, msg := mapCatalogError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, cats)
	})

	// ===== Storefront: settings =====
	r.Get("/v1/settings/whatsapp-numbers", func(w http.ResponseWriter, r *http.Request) {
		n, err := d.SettingsSvc.WhatsAppNumbers(r.Context())
		if err != nil {
			Fail(w, 500, "internal error")
			return
		}
		WriteJSON(w, 200, n)
	})

	r.Get("/v1/settings/contact-info", func(w http.ResponseWriter, r *http.Request) {
		c, err := d.SettingsSvc.ContactInfo(r.Context())
		if err != nil {
			Fail(w, 500, "internal error")
			return
		}
		WriteJSON(w, 200, c)
	})

	r.Get("/v1/settings/business-hours", func(w http.ResponseWriter, r *http.Request) {
		h, err := d.SettingsSvc.BusinessHours(r.Context())
		if err != nil {
			Fail(w, 500, "internal error")
			return
		}
		WriteJSON(w, 200, h)
	})

	if d.SettingsHub != nil {
		r.Get("/v1/settings/feed", settingsFeed(d.SettingsHub))
	}

	// ===== Storefront: contact form =====
	r.Post("/v1/contact", func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r)
		var in contact.MessageInput
		if err := httpjson.Read(r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		msg, err := d.ContactSvc.Create(r.Context(), in)
		if err != nil {
			status, msg := mapContactError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 201, map[string]any{"message": i18n.T(lang, "contact.sent"), "id": msg.ID})
	})

	// ===== Auth =====
	r.Post("/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r)
		var in auth.LoginInput
		if err := httpjson.Read(r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		sess, err := d.AuthSvc.Login(r.Context(), in)
		if err != nil {
			status, msg := mapAuthError(err, lang)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, sess)
	})

	r.Post("/v1/auth/reset-password", func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromRequest(r)
		var in auth.ResetPasswordInput
		if err := httpjson.Read(r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		if err := d.AuthSvc.ResetPassword(r.Context(), in); err != nil {
			status, msg := mapAuthError(err, lang)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"message": i18n.T(lang, "auth.resetSent")})
	})

	// ===== Authenticated routes =====
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			WriteJSON(w, 200, map[string]any{
				"uid":    au.UID,
				"email":  au.Email,
				"claims": au.Claims,
				"admin":  auth.IsAdmin(au.Claims),
			})
		})

		pr.Get("/v1/profile", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			p, err := d.ProfileSvc.GetOrCreate(r.Context(), au.UID, au.Email)
			if err != nil {
				status, msg := mapProfileError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, p)
		})

		pr.Put("/v1/profile", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			var in profile.UpdateProfileInput
			if err := httpjson.Read(r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			p, err := d.ProfileSvc.Update(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapProfileError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, p)
		})

		// ===== Admin routes =====
		pr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAdmin)

			ar.Post("/v1/admin/items/{itemType}", func(w http.ResponseWriter, r *http.Request) {
				typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
				if !ok {
					Fail(w, 400, "unknown item type")
					return
				}
				var in catalog.ItemInput
				if err := httpjson.Read(r, &in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				item, err := d.CatalogSvc.CreateItem(r.Context(), typ, in)
				if err != nil {
					status, msg := mapCatalogError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, item)
			})

			ar.Put("/v1/admin/items/{itemType}/{itemId}", func(w http.ResponseWriter, r *http.Request) {
				typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
				if !ok {
					Fail(w, 400, "unknown item type")
					return
				}
				var in catalog.ItemInput
				if err := httpjson.Read(r, &in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				item, err := d.CatalogSvc.UpdateItem(r.Context(), typ, chi.URLParam(r, "itemId"), in)
				if err != nil {
					status, msg := mapCatalogError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, item)
			})

			ar.Delete("/v1/admin/items/{itemType}/{itemId}", func(w http.ResponseWriter, r *http.Request) {
				typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
				if !ok {
					Fail(w, 400, "unknown item type")
					return
				}
				if err := d.CatalogSvc.DeleteItem(r.Context(), typ, chi.URLParam(r, "itemId")); err != nil {
					status, msg := mapCatalogError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true})
			})

			ar.Post("/v1/admin/categories/{itemType}", func(w http.ResponseWriter, r *http.Request) {
				typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
				if !ok {
					Fail(w, 400, "unknown item type")
					return
				}
				var in catalog.CategoryInput
				if err := httpjson.Read(r, &in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				cat, err := d.CatalogSvc.CreateCategory(r.Context(), typ, in)
				if err != nil {
					status, msg := mapCatalogError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, cat)
			})

			ar.Delete("/v1/admin/categories/{itemType}/{categoryId}", func(w http.ResponseWriter, r *http.Request) {
				typ, ok := catalog.ParseItemType(chi.URLParam(r, "itemType"))
				if !ok {
					Fail(w, 400, "unknown item type")
					return
				}
				if err := d.CatalogSvc.DeleteCategory(r.Context(), typ, chi.URLParam(r, "categoryId")); err != nil {
					status, msg := mapCatalogError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true})
			})

			ar.Put("/v1/admin/settings/whatsapp-numbers", func(w http.ResponseWriter, r *http.Request) {
				var in settings.WhatsAppNumbersInput
				if err := httpjson.Read(r, &in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				n, err := d.SettingsSvc.UpdateWhatsAppNumbers(r.Context(), in)
				if err != nil {
					status, msg := mapSettingsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, n)
			})

			ar.Put("/v1/admin/settings/contact-info", func(w http.ResponseWriter, r *http.Request) {
				var in settings.ContactInfoInput
				if err := httpjson.Read(r, &in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				c, err := d.SettingsSvc.UpdateContactInfo(r.Context(), in)
				if err != nil {
					status, msg := mapSettingsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, c)
			})

			ar.Put("/v1/admin/settings/business-hours", func(w http.ResponseWriter, r *http.Request) {
				var in settings.BusinessHoursInput
				if err := httpjson.Read(r, &in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				h, err := d.SettingsSvc.UpdateBusinessHours(r.Context(), in)
				if err != nil {
					status, msg := mapSettingsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, h)
			})

			ar.Get("/v1/admin/messages", func(w http.ResponseWriter, r *http.Request) {
				msgs, err := d.ContactSvc.List(r.Context())
				if err != nil {
					status, msg := mapContactError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, msgs)
			})

			ar.Delete("/v1/admin/messages/{messageId}", func(w http.ResponseWriter, r *http.Request) {
				if err := d.ContactSvc.Delete(r.Context(), chi.URLParam(r, "messageId")); err != nil {
					status, msg := mapContactError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true})
			})

			if d.StatsSvc != nil {
				ar.Get("/v1/admin/stats", func(w http.ResponseWriter, r *http.Request) {
					o, err := d.StatsSvc.Overview(r.Context())
					if err != nil {
						Fail(w, 500, "internal error")
						return
					}
					WriteJSON(w, 200, o)
				})
			}

			if d.Uploads != nil {
				ar.Post("/v1/admin/uploads/images", d.Uploads.CreateImageUploadURL)
			}
		})
	})

	return r
}
