package vocabulary

// Default returns the built-in vocabulary used when no other is configured.
func Default() *Vocabulary {
	return New([]Entry{
		{Name: "python", Category: CategoryLanguages},
		{Name: "java", Category: CategoryLanguages},
		{Name: "c++", Category: CategoryLanguages},
		{Name: "sql", Category: CategoryLanguages},
		{Name: "aws", Category: CategoryTooling},
		{Name: "docker", Category: CategoryTooling},
		{Name: "kubernetes", Category: CategoryTooling},
		{Name: "react", Category: CategoryFrameworks},
		{Name: "angular", Category: CategoryFrameworks},
		{Name: "django", Category: CategoryFrameworks},
		{Name: "flask", Category: CategoryFrameworks},
		{Name: "machine learning", Category: CategoryData},
		{Name: "data analysis", Category: CategoryData},
		{Name: "communication", Category: CategorySoftSkills},
		{Name: "project management", Category: CategorySoftSkills},
		{Name: "git", Category: CategoryTooling},
		{Name: "linux", Category: CategoryTooling},
		{Name: "html", Category: CategoryLanguages},
		{Name: "css", Category: CategoryLanguages},
		{Name: "javascript", Category: CategoryLanguages},
		{Name: "typescript", Category: CategoryLanguages},
		{Name: "node.js", Category: CategoryFrameworks},
		{Name: "pandas", Category: CategoryData},
		{Name: "numpy", Category: CategoryData},
	})
}
