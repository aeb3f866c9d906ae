package errors

import "net/http"

var (
	ErrTourNotFound = New(
		"TOUR_NOT_FOUND",
		"Tur bulunamadı",
		http.StatusNotFound,
	)

	ErrBlogPostNotFound = New(
		"BLOG_POST_NOT_FOUND",
		"Blog yazısı bulunamadı",
		http.StatusNotFound,
	)

	ErrRecordNotFound = New(
		"RECORD_NOT_FOUND",
		"Kayıt bulunamadı",
		http.StatusNotFound,
	)

	ErrMissingRequiredFields = New(
		"MISSING_REQUIRED_FIELDS",
		"Lütfen tüm zorunlu alanları doldurun",
		http.StatusBadRequest,
	)

	ErrPopularTourLimit = New(
		"POPULAR_TOUR_LIMIT",
		"En fazla 6 adet popüler tur seçebilirsiniz",
		http.StatusConflict,
	)

	ErrActiveStatLimit = New(
		"ACTIVE_STAT_LIMIT",
		"En fazla 3 adet istatistik aktif olabilir",
		http.StatusConflict,
	)

	ErrDuplicateWeatherMonth = New(
		"DUPLICATE_WEATHER_MONTH",
		"Her ay için yalnızca bir hava durumu satırı girilebilir",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = New(
		"FILE_TOO_LARGE",
		"Dosya boyutu izin verilen sınırı aşıyor",
		http.StatusBadRequest,
	)

	ErrUnsupportedFileType = New(
		"UNSUPPORTED_FILE_TYPE",
		"Lütfen geçerli bir görsel dosyası seçin",
		http.StatusBadRequest,
	)

	ErrUnknownUploadCategory = New(
		"UNKNOWN_UPLOAD_CATEGORY",
		"Bilinmeyen yükleme kategorisi",
		http.StatusBadRequest,
	)

	ErrUnsafeSVG = New(
		"UNSAFE_SVG",
		"SVG ikonu izin verilmeyen içerik barındırıyor",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"E-posta veya şifre hatalı",
		http.StatusUnauthorized,
	)

	ErrSessionExpired = New(
		"SESSION_EXPIRED",
		"Oturum süresi doldu, lütfen tekrar giriş yapın",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Bu işlem için giriş yapmalısınız",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Veritabanı işlemi başarısız oldu",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Dosya depolama işlemi başarısız oldu",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Geçersiz istek parametreleri",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Sunucu hatası",
		http.StatusInternalServerError,
	)
)
