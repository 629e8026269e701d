package middleware

import (
	"context"

	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/models"
	"github.com/mozilla/zamboni-sub003/internal/regions"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegionUpdater persists the region last resolved for a user.
// *services.UserService implements it.
type RegionUpdater interface {
	UpdateRegion(ctx context.Context, user *models.UserProfile, region string) error
}

// Region resolves the request's region. Outside the API it is always
// RestOfWorld. API requests may pick one with ?region=; v1 clients that
// don't fall back to GeoIP.
func Region(geo regions.GeoIP, users RegionUpdater, m metrics.Recorder, log *zap.Logger) gin.HandlerFunc {
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "regions"))

	return func(c *gin.Context) {
		ac := GetAPIContext(c)
		if !ac.IsAPI {
			ac.Region = regions.RestOfWorld
			c.Next()
			return
		}

		region := regions.RestOfWorld
		if r, ok := regions.BySlug(c.Query("region")); ok {
			m.RecordRegion("url")
			region = r
			log.Debug("region specified in URL", zap.String("region", region.Slug))
		} else if ac.Version == 1 {
			m.RecordRegion("geoip")
			ip := util.GetIPFromContext(c.Request.Context())
			if ip == "" {
				ip = c.ClientIP()
			}
			region = regionFromIP(c.Request.Context(), geo, ip, log)
		}

		if ac.User != nil && ac.User.Region != region.Slug {
			if err := users.UpdateRegion(c.Request.Context(), ac.User, region.Slug); err != nil {
				log.Warn("failed to store user region", zap.Uint("user_id", ac.User.ID), zap.Error(err))
			}
		}

		ac.Region = region
		c.Next()
	}
}

func regionFromIP(ctx context.Context, geo regions.GeoIP, ip string, log *zap.Logger) regions.Region {
	code, err := geo.Lookup(ctx, ip)
	if err != nil {
		log.Warn("geoip lookup failed", zap.String("ip", ip), zap.Error(err))
	}
	log.Debug("geoip lookup", zap.String("ip", ip), zap.String("result", code))
	if r, ok := regions.Parse(code); ok {
		return r
	}
	return regions.RestOfWorld
}
