package packagesapi

import (
	"net/http"
	"strconv"

	"guide-app/internal/domain/packages"

	"github.com/gin-gonic/gin"
)

func packageJSON(p packages.Package, licenses int) gin.H {
	return gin.H{
		"key":                 p.Key,
		"name":                p.FullName(licenses),
		"price":               p.FullPrice(licenses),
		"basePrice":           p.Price,
		"isGroup":             p.IsGroup,
		"includesTshirt":      p.IncludesTshirt,
		"includesSlackAccess": p.IncludesSlackAccess,
	}
}

// GET /packages
func ListPackages(c *gin.Context) {
	all := packages.All()
	out := make([]gin.H, 0, len(all))
	for _, p := range all {
		licenses := 0
		if p.IsGroup {
			licenses = packages.BaseLicenses
		}
		out = append(out, packageJSON(p, licenses))
	}
	c.JSON(http.StatusOK, gin.H{"packages": out, "baseLicenses": packages.BaseLicenses})
}

// GET /packages/:key?licenses=10
func GetPackage(c *gin.Context) {
	pkg, ok := packages.Get(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown package"})
		return
	}

	licenses, _ := strconv.Atoi(c.DefaultQuery("licenses", "0"))
	if pkg.IsGroup && licenses <= 0 {
		licenses = packages.BaseLicenses
	}

	c.JSON(http.StatusOK, gin.H{"package": packageJSON(pkg, licenses)})
}
