package model

// Sample returns the built-in demo résumé used by "fill sample data".
func Sample() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			FullName:  "Ronald Gunawan",
			Email:     "ronald.gunawan@email.com",
			Phone:     "+62 812-3456-7890",
			Location:  "Jakarta, Indonesia",
			LinkedIn:  "linkedin.com/in/ronaldgunawan",
			Instagram: "@ronaldgunawan",
			Summary: "Mahasiswa Universitas Trisakti semester 7 dengan pengalaman magang sebagai analis kredit di Bank Central Asia. " +
				"Memiliki keahlian analisa keuangan dan komunikasi yang baik. " +
				"Berdedikasi untuk mengembangkan kemampuan sebagai internal audit dan berkontribusi pada pertumbuhan perusahaan.",
		},
		Experiences: []Experience{
			{
				ID:        "1",
				JobTitle:  "Staff Magang Analisis Kredit",
				Company:   "Bank Central Asia (BCA)",
				Location:  "Jakarta, Indonesia",
				StartDate: "2024-06",
				EndDate:   "2024-08",
				Description: "Mengumpulkan informasi serta melakukan wawancara kepada 30+ calon peminjam\n" +
					"Mengevaluasi rasio-rasio keuangan dengan menggunakan alat analisis kredit\n" +
					"Membantu pengecekan kelengkapan serta kelayakan dokumen dari 50+ calon peminjam\n" +
					"Melakukan analisis kredit terperinci dengan memeriksa laporan keuangan, neraca, laporan laba rugi, dan arus kas calon peminjam",
			},
		},
		Education: []Education{
			{
				ID:             "1",
				Degree:         "S1 Manajemen Keuangan",
				Institution:    "Universitas Trisakti",
				Location:       "Jakarta, Indonesia",
				GraduationDate: "2025-07",
				GPA:            "3.75",
				Description: "Penerima beasiswa Universitas Trisakti periode September 2022 - Juli 2023\n" +
					"Finalist National English Speech Competition 2021\n" +
					"Aktif dalam organisasi kemahasiswaan sebagai Bendahara Himpunan Mahasiswa",
			},
		},
		Skills: []Skill{
			{ID: "1", Name: "Analisis Keuangan", Level: LevelAdvanced, Category: CategoryHard},
			{ID: "2", Name: "Microsoft Excel", Level: LevelAdvanced, Category: CategoryTechnical},
			{ID: "3", Name: "Komunikasi", Level: LevelAdvanced, Category: CategorySoft},
			{ID: "4", Name: "Manajemen Waktu", Level: LevelAdvanced, Category: CategorySoft},
			{ID: "5", Name: "Analisis Data", Level: LevelIntermediate, Category: CategoryHard},
			{ID: "6", Name: "PowerPoint", Level: LevelAdvanced, Category: CategoryTechnical},
			{ID: "7", Name: "Kerja Tim", Level: LevelAdvanced, Category: CategorySoft},
			{ID: "8", Name: "Pemecahan Masalah", Level: LevelAdvanced, Category: CategorySoft},
		},
		Certifications: []string{
			"Sertifikat Analisis Kredit - Bank Indonesia",
			"Microsoft Office Specialist - Excel Expert",
			"Sertifikat Manajemen Risiko Keuangan",
		},
		Languages: []string{
			"Bahasa Indonesia (Native)",
			"English (Fluent)",
			"Mandarin (Basic)",
		},
	}
}
