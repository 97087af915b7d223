package classify

// MaxFileSize is the size in bytes above which a file is excluded unless its
// extension is in SizeExemptExtensions.
const MaxFileSize = 200 * 1024

// SourceExtensions are the extensions of files worth including.
var SourceExtensions = []string{
	".java", ".py", ".js", ".ts", ".jsx", ".tsx", ".html", ".css",
	".scss", ".sass", ".less", ".vue", ".svelte",
	".c", ".cpp", ".h", ".hpp", ".cs", ".go", ".rs", ".rb", ".php",
	".yaml", ".yml", ".md", ".txt", ".sh", ".bat", ".ps1",
	".sql", ".graphql", ".proto",
	".gitignore", ".dockerignore", ".env.example",
}

// ImportantFiles are config files included regardless of extension.
var ImportantFiles = []string{
	// JavaScript/TypeScript
	"package.json", "tsconfig.json", "vite.config.js", "vite.config.ts",
	"webpack.config.js", "rollup.config.js", "jest.config.js",
	"tailwind.config.js", "postcss.config.js", ".eslintrc.json",

	// Java
	"pom.xml", "build.gradle", "settings.gradle", "application.properties",
	"application.yml", "application.yaml",

	// Python
	"requirements.txt", "Pipfile", "pyproject.toml", "setup.py", "poetry.lock",

	// Docker & infrastructure
	"Dockerfile", "docker-compose.yml", "docker-compose.yaml",
	".dockerignore", "nginx.conf", "Makefile",

	// Other
	"README.md", "README.txt", "LICENSE", "Cargo.toml", "go.mod",
	"composer.json", "Gemfile", "pubspec.yaml", "CMakeLists.txt",
}

// ExcludedDirs are directory names pruned from the walk.
var ExcludedDirs = []string{
	".git", ".vscode", ".idea", "node_modules", "dist", "build",
	"__pycache__", "venv", ".venv", "bin", "obj", "target",
	"postgres-data", "coverage", "logs", "tmp", "temp", "cache",
	".next", ".nuxt", "out", "public", "static", "assets",
	"vendor", "bower_components", "jspm_packages",
}

// ExcludedPatterns are shell-style patterns matched against the relative path.
var ExcludedPatterns = []string{
	// Translation files
	"**/locales/**/*.json",
	"**/lang/**/*.json",
	"**/i18n/**/*.json",
	"**/translations/**/*.json",
	"**/*-i18n.json",
	"**/*.i18n.json",
	"**/en.json", "**/es.json", "**/fr.json", "**/de.json", "**/it.json",
	"**/pt.json", "**/ja.json", "**/zh.json", "**/ko.json", "**/ru.json",
	"**/en-US.json", "**/es-ES.json", "**/fr-FR.json",

	// Locks and generated files
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml",
	"composer.lock", "Gemfile.lock", "poetry.lock",

	// Source maps and minified bundles
	"*.min.js", "*.min.css", "*.map", "*.bundle.js",

	// Test and mock data
	"**/test-data/**", "**/mock-data/**", "**/fixtures/**/*.json",

	// OS and editor leftovers
	".DS_Store", "Thumbs.db", "*.log", "*.pid", "*.seed",
	"*.swp", "*.swo", "*~",
}

// ExcludedFiles are basenames excluded wherever they appear.
var ExcludedFiles = []string{
	// Translations
	"en.json", "es.json", "fr.json", "de.json", "it.json", "pt.json",
	"ja.json", "zh.json", "ko.json", "ru.json", "ar.json", "hi.json",
	"en-US.json", "en-GB.json", "es-ES.json", "es-MX.json", "fr-FR.json",
	"pt-BR.json", "zh-CN.json", "zh-TW.json",

	// Locks
	"package-lock.json", "yarn.lock", "composer.lock",

	// Build caches
	"tsconfig.tsbuildinfo", ".eslintcache",
}

// SizeExemptExtensions are never excluded for size.
var SizeExemptExtensions = []string{".sql", ".md"}

// BuildMarkers are extensionless files that are always important.
var BuildMarkers = []string{"Dockerfile", "Makefile", "Procfile"}

// LocaleIndicators mark a path as living under a localization directory.
var LocaleIndicators = []string{"/locales/", "/lang/", "/i18n/", "/translations/"}
