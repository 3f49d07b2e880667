package score

import "github.com/theOrangeShi/seo-analazing/models"

// recommendations is the static improvement-advice table, keyed by metric
// name. Independent of score and website type.
var recommendations = map[string][]string{
	"pageSpeed": {
		"Optimize image sizes and formats",
		"Minify CSS and JavaScript files",
		"Enable browser caching",
		"Serve assets through a CDN",
	},
	"mobileOptimization": {
		"Add a viewport meta tag",
		"Increase touch target sizes",
		"Use responsive design",
		"Test the mobile experience",
	},
	"metaTags": {
		"Keep titles between 30 and 60 characters",
		"Write compelling descriptions of 120-160 characters",
		"Add a canonical link",
		"Avoid duplicate titles",
	},
	"headingStructure": {
		"Use exactly one H1 per page",
		"Structure sections with H2 and H3 tags",
		"Keep the heading hierarchy sequential",
		"Write descriptive heading text",
	},
	"imageOptimization": {
		"Add alt attributes to every image",
		"Adopt the WebP format",
		"Compress image files",
		"Lazy-load below-the-fold images",
	},
	"internalLinking": {
		"Fix all broken links",
		"Trim excessive external links",
		"Add more internal links",
		"Flatten deep link hierarchies",
	},
	"sslCertificate": {
		"Serve the site over HTTPS",
		"Watch the SSL certificate expiry date",
		"Enable HSTS",
		"Fix mixed content references",
	},
	"socialMediaTags": {
		"Add Open Graph tags",
		"Configure Twitter Cards",
		"Set a social sharing image",
		"Polish the sharing description",
	},
	"contentQuality": {
		"Expand the page content",
		"Raise content quality",
		"Tune keyword density",
		"Add more internal links",
	},
	"urlStructure": {
		"Shorten long URLs",
		"Reduce path depth",
		"Put keywords in the URL",
		"Avoid special characters",
	},
	"robotsTxt": {
		"Create a robots.txt file",
		"Reference the sitemap from robots.txt",
		"Avoid blocking important resources",
		"Configure crawler rules correctly",
	},
	"sitemap": {
		"Create a sitemap.xml file",
		"Keep the sitemap up to date",
		"Include every important page",
		"Submit the sitemap to search engines",
	},
}

// Recommendations returns the static advice list for a metric.
func Recommendations(metric string) []string {
	if recs, ok := recommendations[metric]; ok {
		return recs
	}
	return []string{"Follow general SEO best practices"}
}

// catalog is the display metadata for GET /api/v1/metrics.
var catalog = map[string]models.MetricInfo{
	"pageSpeed":          {Name: "Page Speed", Icon: "fas fa-tachometer-alt", Weight: 15},
	"mobileOptimization": {Name: "Mobile Optimization", Icon: "fas fa-mobile-alt", Weight: 12},
	"metaTags":           {Name: "Meta Tags", Icon: "fas fa-tags", Weight: 10},
	"headingStructure":   {Name: "Heading Structure", Icon: "fas fa-heading", Weight: 8},
	"imageOptimization":  {Name: "Image Optimization", Icon: "fas fa-image", Weight: 8},
	"internalLinking":    {Name: "Internal Linking", Icon: "fas fa-link", Weight: 10},
	"sslCertificate":     {Name: "SSL Certificate", Icon: "fas fa-lock", Weight: 12},
	"socialMediaTags":    {Name: "Social Media Tags", Icon: "fas fa-share-alt", Weight: 6},
	"contentQuality":     {Name: "Content Quality", Icon: "fas fa-file-alt", Weight: 10},
	"urlStructure":       {Name: "URL Structure", Icon: "fas fa-globe", Weight: 5},
	"robotsTxt":          {Name: "Robots.txt", Icon: "fas fa-robot", Weight: 2},
	"sitemap":            {Name: "XML Sitemap", Icon: "fas fa-sitemap", Weight: 2},
}

// Catalog returns the metric display metadata. The returned map is a
// copy; callers cannot disturb the canonical table.
func Catalog() map[string]models.MetricInfo {
	out := make(map[string]models.MetricInfo, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out
}
