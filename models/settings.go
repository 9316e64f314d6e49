package models

// Settings is the dashboard preferences record, broken into the same logical
// sections the settings screen shows.
type Settings struct {
	CompanyName   string                `json:"companyName"`
	AdminEmail    string                `json:"adminEmail"`
	Notifications NotificationSettings  `json:"notifications"`
	Security      SecuritySettings      `json:"security"`
	System        SystemSettings        `json:"system"`
	Appearance    AppearanceSettings    `json:"appearance"`
	Email         EmailSettings         `json:"email"`
	Payment       PaymentSettings       `json:"payment"`
	Localization  LocalizationSettings  `json:"localization"`
	DataRetention DataRetentionSettings `json:"dataManagement"`
}

type NotificationSettings struct {
	NewOrders     bool `json:"newOrders"`
	LowStock      bool `json:"lowStock"`
	Consultations bool `json:"consultations"`
	SystemUpdates bool `json:"systemUpdates"`
}

type SecuritySettings struct {
	TwoFactor      bool   `json:"twoFactor"`
	SessionTimeout string `json:"sessionTimeout"`
}

type SystemSettings struct {
	AutoBackup      bool `json:"autoBackup"`
	MaintenanceMode bool `json:"maintenanceMode"`
}

type AppearanceSettings struct {
	Theme       string `json:"theme"`
	CompactMode bool   `json:"compactMode"`
}

type EmailSettings struct {
	SMTPServer string `json:"smtpServer"`
	SMTPPort   string `json:"smtpPort"`
	Enabled    bool   `json:"enabled"`
}

type PaymentSettings struct {
	Currency      string `json:"currency"`
	StripeEnabled bool   `json:"stripeEnabled"`
	PaypalEnabled bool   `json:"paypalEnabled"`
}

type LocalizationSettings struct {
	Language   string `json:"language"`
	Timezone   string `json:"timezone"`
	DateFormat string `json:"dateFormat"`
}

type DataRetentionSettings struct {
	AutoExport    bool   `json:"autoExport"`
	RetentionDays string `json:"retentionDays"`
}

// DefaultSettings returns the record a fresh admin account starts with.
func DefaultSettings() Settings {
	return Settings{
		CompanyName: "Admin Dashboard",
		AdminEmail:  "admin@example.com",
		Notifications: NotificationSettings{
			NewOrders:     true,
			LowStock:      true,
			Consultations: true,
		},
		Security:     SecuritySettings{SessionTimeout: "30"},
		System:       SystemSettings{AutoBackup: true},
		Appearance:   AppearanceSettings{Theme: "light"},
		Email:        EmailSettings{SMTPPort: "587"},
		Payment:      PaymentSettings{Currency: "USD"},
		Localization: LocalizationSettings{Language: "en", Timezone: "UTC", DateFormat: "MM/DD/YYYY"},
		DataRetention: DataRetentionSettings{
			RetentionDays: "365",
		},
	}
}
