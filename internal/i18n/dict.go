package i18n

// Dictionaries for the two storefront locales. Keys missing from a locale
// fall back to the raw key in T.
var dictionaries = map[string]map[string]string{
	LangEN: {
		"nav.home":     "Home",
		"nav.products": "Products",
		"nav.crafts":   "Crafts",
		"nav.about":    "About",
		"nav.contact":  "Contact",

		"products.title":    "Homemade Food",
		"crafts.title":      "Handmade Crafts",
		"category.all":      "All",
		"item.orderNow":     "Order Now",
		"item.seller":       "Seller",
		"item.rating":       "Rating",
		"item.price":        "Price",
		"item.saved":        "Item saved successfully",
		"item.deleted":      "Item deleted successfully",
		"item.notFound":     "Item not found",
		"category.created":  "Category created",
		"category.deleted":  "Category deleted",
		"category.notFound": "Category not found",

		"contact.title":     "Contact Us",
		"contact.phone":     "Phone",
		"contact.email":     "Email",
		"contact.address":   "Address",
		"contact.hours":     "Business Hours",
		"contact.saved":     "Contact info saved",
		"contact.sent":      "Message sent, thank you",
		"hours.closed":      "Closed",
		"hours.saved":       "Business hours saved",
		"whatsapp.saved":    "WhatsApp numbers saved",
		"whatsapp.missing":  "WhatsApp number is not configured yet",
		"whatsapp.orderVia": "Order via WhatsApp",

		"whatsapp.orderTemplate": "Hello, I would like to order %s from %s",

		"auth.invalidCredentials": "Incorrect email or password",
		"auth.userNotFound":       "No account matches this email",
		"auth.usernameNotFound":   "Username not found",
		"auth.tooManyRequests":    "Too many attempts, try again later",
		"auth.invalidEmail":       "Invalid email address",
		"auth.resetSent":          "Password reset email sent",

		"error.generic": "Something went wrong, please try again",
	},
	LangAR: {
		"nav.home":     "الرئيسية",
		"nav.products": "المنتجات",
		"nav.crafts":   "الحرف اليدوية",
		"nav.about":    "من نحن",
		"nav.contact":  "اتصل بنا",

		"products.title":    "أكلات بيتية",
		"crafts.title":      "حرف يدوية",
		"category.all":      "الكل",
		"item.orderNow":     "اطلب الآن",
		"item.seller":       "البائع",
		"item.rating":       "التقييم",
		"item.price":        "السعر",
		"item.saved":        "تم حفظ المنتج بنجاح",
		"item.deleted":      "تم حذف المنتج بنجاح",
		"item.notFound":     "المنتج غير موجود",
		"category.created":  "تم إنشاء التصنيف",
		"category.deleted":  "تم حذف التصنيف",
		"category.notFound": "التصنيف غير موجود",

		"contact.title":     "اتصل بنا",
		"contact.phone":     "الهاتف",
		"contact.email":     "البريد الإلكتروني",
		"contact.address":   "العنوان",
		"contact.hours":     "ساعات العمل",
		"contact.saved":     "تم حفظ بيانات الاتصال",
		"contact.sent":      "تم إرسال الرسالة، شكراً لك",
		"hours.closed":      "مغلق",
		"hours.saved":       "تم حفظ ساعات العمل",
		"whatsapp.saved":    "تم حفظ أرقام واتساب",
		"whatsapp.missing":  "رقم واتساب غير مُعد بعد",
		"whatsapp.orderVia": "اطلب عبر واتساب",

		"whatsapp.orderTemplate": "مرحباً، أود أن أطلب %s من %s",

		"auth.invalidCredentials": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"auth.userNotFound":       "لا يوجد حساب بهذا البريد الإلكتروني",
		"auth.usernameNotFound":   "اسم المستخدم غير موجود",
		"auth.tooManyRequests":    "محاولات كثيرة، حاول مرة أخرى لاحقاً",
		"auth.invalidEmail":       "البريد الإلكتروني غير صالح",
		"auth.resetSent":          "تم إرسال رابط إعادة تعيين كلمة المرور",

		"error.generic": "حدث خطأ ما، حاول مرة أخرى",
	},
}

// Keys returns the key set of a locale dictionary (used by tests and the
// locale export endpoint).
func Keys(lang string) []string {
	d := dictionaries[Normalize(lang)]
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	return out
}

// Dictionary returns a copy of the dictionary for lang.
func Dictionary(lang string) map[string]string {
	d := dictionaries[Normalize(lang)]
	out := make(map[string]string, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
