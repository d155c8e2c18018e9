package mushaf

// entry is one row of the surah start table. Surahs that begin on the same
// page share a row.
type entry struct {
	Start       int
	Names       []string
	ArabicNames []string
}

var surahStarts = []entry{
	{Start: 1, Names: []string{"Al-Fatiha"}, ArabicNames: []string{"الفاتحة"}},
	{Start: 2, Names: []string{"Al-Baqarah"}, ArabicNames: []string{"البقرة"}},
	{Start: 49, Names: []string{"Aal-Imran"}, ArabicNames: []string{"آل عمران"}},
	{Start: 76, Names: []string{"An-Nisa"}, ArabicNames: []string{"النساء"}},
	{Start: 105, Names: []string{"Al-Maidah"}, ArabicNames: []string{"المائدة"}},
	{Start: 127, Names: []string{"Al-Anam"}, ArabicNames: []string{"الأنعام"}},
	{Start: 150, Names: []string{"Al-Araf"}, ArabicNames: []string{"الأعراف"}},
	{Start: 176, Names: []string{"Al-Anfal"}, ArabicNames: []string{"الأنفال"}},
	{Start: 186, Names: []string{"At-Tawbah"}, ArabicNames: []string{"التوبة"}},
	{Start: 207, Names: []string{"Yunus"}, ArabicNames: []string{"يونس"}},
	{Start: 220, Names: []string{"Hud"}, ArabicNames: []string{"هود"}},
	{Start: 234, Names: []string{"Yusuf"}, ArabicNames: []string{"يوسف"}},
	{Start: 248, Names: []string{"Ar-Rad"}, ArabicNames: []string{"الرعد"}},
	{Start: 254, Names: []string{"Ibrahim"}, ArabicNames: []string{"إبراهيم"}},
	{Start: 261, Names: []string{"Al-Hijr"}, ArabicNames: []string{"الحجر"}},
	{Start: 266, Names: []string{"An-Nahl"}, ArabicNames: []string{"النحل"}},
	{Start: 281, Names: []string{"Al-Isra"}, ArabicNames: []string{"الإسراء"}},
	{Start: 292, Names: []string{"Al-Kahf"}, ArabicNames: []string{"الكهف"}},
	{Start: 304, Names: []string{"Maryam"}, ArabicNames: []string{"مريم"}},
	{Start: 311, Names: []string{"Ta-Ha"}, ArabicNames: []string{"طه"}},
	{Start: 321, Names: []string{"Al-Anbiya"}, ArabicNames: []string{"الأنبياء"}},
	{Start: 331, Names: []string{"Al-Hajj"}, ArabicNames: []string{"الحج"}},
	{Start: 341, Names: []string{"Al-Muminun"}, ArabicNames: []string{"المؤمنون"}},
	{Start: 349, Names: []string{"An-Nur"}, ArabicNames: []string{"النور"}},
	{Start: 357, Names: []string{"Al-Furqan"}, ArabicNames: []string{"الفرقان"}},
	{Start: 366, Names: []string{"Ash-Shuara"}, ArabicNames: []string{"الشعراء"}},
	{Start: 376, Names: []string{"An-Naml"}, ArabicNames: []string{"النمل"}},
	{Start: 384, Names: []string{"Al-Qasas"}, ArabicNames: []string{"القصص"}},
	{Start: 395, Names: []string{"Al-Ankabut"}, ArabicNames: []string{"العنكبوت"}},
	{Start: 403, Names: []string{"Ar-Rum"}, ArabicNames: []string{"الروم"}},
	{Start: 410, Names: []string{"Luqman"}, ArabicNames: []string{"لقمان"}},
	{Start: 414, Names: []string{"As-Sajdah"}, ArabicNames: []string{"السجدة"}},
	{Start: 417, Names: []string{"Al-Ahzab"}, ArabicNames: []string{"الأحزاب"}},
	{Start: 427, Names: []string{"Saba"}, ArabicNames: []string{"سبأ"}},
	{Start: 433, Names: []string{"Fatir"}, ArabicNames: []string{"فاطر"}},
	{Start: 439, Names: []string{"Ya-Sin"}, ArabicNames: []string{"يس"}},
	{Start: 445, Names: []string{"As-Saffat"}, ArabicNames: []string{"الصافات"}},
	{Start: 452, Names: []string{"Sad"}, ArabicNames: []string{"ص"}},
	{Start: 457, Names: []string{"Az-Zumar"}, ArabicNames: []string{"الزمر"}},
	{Start: 466, Names: []string{"Ghafir"}, ArabicNames: []string{"غافر"}},
	{Start: 476, Names: []string{"Fussilat"}, ArabicNames: []string{"فصلت"}},
	{Start: 482, Names: []string{"Ash-Shura"}, ArabicNames: []string{"الشورى"}},
	{Start: 488, Names: []string{"Az-Zukhruf"}, ArabicNames: []string{"الزخرف"}},
	{Start: 495, Names: []string{"Ad-Dukhan"}, ArabicNames: []string{"الدخان"}},
	{Start: 496, Names: []string{"Al-Jathiyah"}, ArabicNames: []string{"الجاثية"}},
	{Start: 501, Names: []string{"Al-Ahqaf"}, ArabicNames: []string{"الأحقاف"}},
	{Start: 506, Names: []string{"Muhammad"}, ArabicNames: []string{"محمد"}},
	{Start: 510, Names: []string{"Al-Fath"}, ArabicNames: []string{"الفتح"}},
	{Start: 514, Names: []string{"Al-Hujurat"}, ArabicNames: []string{"الحجرات"}},
	{Start: 517, Names: []string{"Qaf"}, ArabicNames: []string{"ق"}},
	{Start: 519, Names: []string{"Adh-Dhariyat"}, ArabicNames: []string{"الذاريات"}},
	{Start: 522, Names: []string{"At-Tur"}, ArabicNames: []string{"الطور"}},
	{Start: 525, Names: []string{"An-Najm"}, ArabicNames: []string{"النجم"}},
	{Start: 527, Names: []string{"Al-Qamar"}, ArabicNames: []string{"القمر"}},
	{Start: 530, Names: []string{"Ar-Rahman"}, ArabicNames: []string{"الرحمن"}},
	{Start: 533, Names: []string{"Al-Waqi’ah"}, ArabicNames: []string{"الواقعة"}},
	{Start: 536, Names: []string{"Al-Hadid"}, ArabicNames: []string{"الحديد"}},
	{Start: 541, Names: []string{"Al-Mujadila"}, ArabicNames: []string{"المجادلة"}},
	{Start: 544, Names: []string{"Al-Hashr"}, ArabicNames: []string{"الحشر"}},
	{Start: 546, Names: []string{"Al-Mumtahanah"}, ArabicNames: []string{"الممتحنة"}},
	{Start: 550, Names: []string{"As-Saff"}, ArabicNames: []string{"الصف"}},
	{Start: 552, Names: []string{"Al-Jumuah"}, ArabicNames: []string{"الجمعة"}},
	{Start: 553, Names: []string{"Al-Munafiqun"}, ArabicNames: []string{"المنافقون"}},
	{Start: 555, Names: []string{"At-Taghabun"}, ArabicNames: []string{"التغابن"}},
	{Start: 557, Names: []string{"At-Talaq"}, ArabicNames: []string{"الطلاق"}},
	{Start: 559, Names: []string{"At-Tahrim"}, ArabicNames: []string{"التحريم"}},
	{Start: 561, Names: []string{"Al-Mulk"}, ArabicNames: []string{"الملك"}},
	{Start: 563, Names: []string{"Al-Qalam"}, ArabicNames: []string{"القلم"}},
	{Start: 565, Names: []string{"Al-Haqqah"}, ArabicNames: []string{"الحاقة"}},
	{Start: 567, Names: []string{"Al-Ma’arij"}, ArabicNames: []string{"المعارج"}},
	{Start: 569, Names: []string{"Nuh"}, ArabicNames: []string{"نوح"}},
	{Start: 571, Names: []string{"Al-Jinn"}, ArabicNames: []string{"الجن"}},
	{Start: 573, Names: []string{"Al-Muzzammil"}, ArabicNames: []string{"المزمل"}},
	{Start: 574, Names: []string{"Al-Muddathir"}, ArabicNames: []string{"المدثر"}},
	{Start: 576, Names: []string{"Al-Qiyamah"}, ArabicNames: []string{"القيامة"}},
	{Start: 577, Names: []string{"Al-Insan"}, ArabicNames: []string{"الإنسان"}},
	{Start: 579, Names: []string{"Al-Mursalat"}, ArabicNames: []string{"المرسلات"}},
	{Start: 581, Names: []string{"An-Naba"}, ArabicNames: []string{"النبأ"}},
	{Start: 582, Names: []string{"An-Naziat"}, ArabicNames: []string{"النازعات"}},
	{Start: 584, Names: []string{"Abasa"}, ArabicNames: []string{"عبس"}},
	{Start: 585, Names: []string{"At-Takwir"}, ArabicNames: []string{"التكوير"}},
	{Start: 586, Names: []string{"Al-Infitar"}, ArabicNames: []string{"الإنفطار"}},
	{Start: 587, Names: []string{"Al-Mutaffifin"}, ArabicNames: []string{"المطففين"}},
	{Start: 588, Names: []string{"Al-Inshiqaq"}, ArabicNames: []string{"الانشقاق"}},
	{Start: 589, Names: []string{"Al-Buruj"}, ArabicNames: []string{"البروج"}},
	{Start: 590, Names: []string{"At-Tariq"}, ArabicNames: []string{"الطارق"}},
	{Start: 591, Names: []string{"Al-Ala", "Al-Ghashiyah"}, ArabicNames: []string{"الأعلى", "الغاشية"}},
	{Start: 592, Names: []string{"Al-Fajr"}, ArabicNames: []string{"الفجر"}},
	{Start: 593, Names: []string{"Al-Balad"}, ArabicNames: []string{"البلد"}},
	{Start: 594, Names: []string{"Ash-Shams"}, ArabicNames: []string{"الشمس"}},
	{Start: 595, Names: []string{"Al-Layl", "Ad-Duha"}, ArabicNames: []string{"الليل", "الضحى"}},
	{Start: 596, Names: []string{"Ash-Sharh", "At-Tin"}, ArabicNames: []string{"الشرح", "التين"}},
	{Start: 597, Names: []string{"Al-Alaq"}, ArabicNames: []string{"العلق"}},
	{Start: 598, Names: []string{"Al-Qadr", "Al-Bayyinah"}, ArabicNames: []string{"القدر", "البينة"}},
	{Start: 599, Names: []string{"Az-Zalzalah", "Al-Adiyat"}, ArabicNames: []string{"الزلزلة", "العاديات"}},
	{Start: 600, Names: []string{"Al-Qari’ah", "At-Takathur"}, ArabicNames: []string{"القارعة", "التكاثر"}},
	{Start: 601, Names: []string{"Al-Asr", "Al-Humazah", "Al-Fil"}, ArabicNames: []string{"العصر", "الهمزة", "الفيل"}},
	{Start: 602, Names: []string{"Quraysh", "Al-Ma’un", "Al-Kawthar"}, ArabicNames: []string{"قريش", "الماعون", "الكوثر"}},
	{Start: 603, Names: []string{"Al-Kafirun", "An-Nasr", "Al-Masad"}, ArabicNames: []string{"الكافرون", "النصر", "المسد"}},
	{Start: 604, Names: []string{"Al-Ikhlas", "Al-Falaq", "An-Nas"}, ArabicNames: []string{"الإخلاص", "الفلق", "الناس"}},
}
