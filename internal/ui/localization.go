package ui

import (
	"log"

	"github.com/jeandeaual/go-locale"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLanguage  func() (string, error)
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyThresholds          = "thresholds"
	KeyBatteryThresholds   = "battery_thresholds"
	KeyDischargeThresholds = "discharge_thresholds"
	KeyCPUThresholds       = "cpu_thresholds"
	KeySignalThresholds    = "signal_thresholds"
	KeyInvalidThresholds   = "invalid_thresholds"
	KeyBehaviour           = "behaviour"
	KeyFeedbackTimeout     = "feedback_timeout"
	KeyCommandRateLimit    = "command_rate_limit"
	KeyLayoutCase          = "layout_case"
	KeyDateFormat          = "date_format"
	KeyCompactClock        = "compact_clock"
	KeyPaths               = "paths"
	KeyIconDirectory       = "icon_directory"
	KeyCatalogPath         = "catalog_path"
	KeyScriptsDirectory    = "scripts_directory"
	KeyReloadCatalog       = "reload_catalog"
	KeyCatalogReloaded     = "catalog_reloaded"
	KeyCommandFailed       = "command_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		systemLanguage:  locale.GetLanguage,
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the user locale
// and falls back to English when it is not translated.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
		if sys, err := l.systemLanguage(); err != nil {
			log.Printf("Warning: failed to detect system language: %v", err)
		} else if _, exists := l.texts[sys]; exists {
			lang = sys
		}
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"zh": "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Top Bar",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyThresholds:          "Thresholds",
		KeyBatteryThresholds:   "Battery severity (%)",
		KeyDischargeThresholds: "Battery icon levels (%)",
		KeyCPUThresholds:       "CPU severity (%)",
		KeySignalThresholds:    "Wi-Fi signal bars (%)",
		KeyInvalidThresholds:   "Thresholds must be numbers between 0 and 100",
		KeyBehaviour:           "Behaviour",
		KeyFeedbackTimeout:     "Click highlight (ms)",
		KeyCommandRateLimit:    "Commands per second",
		KeyLayoutCase:          "Layout label case",
		KeyDateFormat:          "Date format",
		KeyCompactClock:        "Compact clock",
		KeyPaths:               "Paths",
		KeyIconDirectory:       "Icon directory",
		KeyCatalogPath:         "Icon catalog",
		KeyScriptsDirectory:    "Scripts directory",
		KeyReloadCatalog:       "Reload icon catalog",
		KeyCatalogReloaded:     "Icon catalog reloaded",
		KeyCommandFailed:       "Command failed",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Верхняя панель",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyThresholds:          "Пороги",
		KeyBatteryThresholds:   "Уровень батареи (%)",
		KeyDischargeThresholds: "Значки батареи (%)",
		KeyCPUThresholds:       "Загрузка ЦП (%)",
		KeySignalThresholds:    "Сигнал Wi-Fi (%)",
		KeyInvalidThresholds:   "Пороги должны быть числами от 0 до 100",
		KeyBehaviour:           "Поведение",
		KeyFeedbackTimeout:     "Подсветка нажатия (мс)",
		KeyCommandRateLimit:    "Команд в секунду",
		KeyLayoutCase:          "Регистр раскладки",
		KeyDateFormat:          "Формат даты",
		KeyCompactClock:        "Компактные часы",
		KeyPaths:               "Пути",
		KeyIconDirectory:       "Папка значков",
		KeyCatalogPath:         "Каталог значков",
		KeyScriptsDirectory:    "Папка скриптов",
		KeyReloadCatalog:       "Перечитать каталог значков",
		KeyCatalogReloaded:     "Каталог значков перечитан",
		KeyCommandFailed:       "Ошибка команды",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:            "顶栏",
		KeySettings:            "设置",
		KeyFile:                "文件",
		KeyLanguage:            "语言",
		KeySave:                "保存",
		KeyCancel:              "取消",
		KeyBrowse:              "浏览",
		KeySettingsSaved:       "设置已保存！",
		KeyThresholds:          "阈值",
		KeyBatteryThresholds:   "电池等级 (%)",
		KeyDischargeThresholds: "电池图标等级 (%)",
		KeyCPUThresholds:       "CPU 等级 (%)",
		KeySignalThresholds:    "Wi-Fi 信号 (%)",
		KeyInvalidThresholds:   "阈值必须是 0 到 100 之间的数字",
		KeyBehaviour:           "行为",
		KeyFeedbackTimeout:     "点击高亮 (毫秒)",
		KeyCommandRateLimit:    "每秒命令数",
		KeyLayoutCase:          "布局标签大小写",
		KeyDateFormat:          "日期格式",
		KeyCompactClock:        "紧凑时钟",
		KeyPaths:               "路径",
		KeyIconDirectory:       "图标目录",
		KeyCatalogPath:         "图标目录文件",
		KeyScriptsDirectory:    "脚本目录",
		KeyReloadCatalog:       "重新加载图标目录",
		KeyCatalogReloaded:     "图标目录已重新加载",
		KeyCommandFailed:       "命令失败",
	}
}
