package environment

import "os"

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetCloudinaryCloudName() string {
	return os.Getenv("CLOUDINARY_CLOUD_NAME")
}

func GetCloudinaryAPIKey() string {
	return os.Getenv("CLOUDINARY_API_KEY")
}

func GetCloudinaryAPISecret() string {
	return os.Getenv("CLOUDINARY_API_SECRET")
}

// GetPredictionServiceURL returns the base endpoint of the external
// price-prediction service.
func GetPredictionServiceURL() string {
	url := os.Getenv("PREDICTION_SERVICE_URL")
	if url == "" {
		url = "http://127.0.0.1:8000/api/predict/"
	}
	return url
}

func GetSMTPHost() string {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	return host
}

func GetSMTPPort() string {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return port
}

func GetSMTPUser() string {
	return os.Getenv("SMTP_USER")
}

func GetSMTPPassword() string {
	return os.Getenv("SMTP_PASSWORD")
}
