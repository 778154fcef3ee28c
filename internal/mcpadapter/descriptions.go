package mcpadapter

// Tool descriptions surfaced in the MCP catalog.
const (
	CreateCollectionDescription = "Create a new collection for document storage"

	DeleteCollectionDescription = "Delete a collection and all its documents"

	ListCollectionsDescription = "List all available collections"

	CollectionStatusDescription = "Get document counts and indexing progress for a collection (or the whole account when no collection is given)"

	AddDocumentDescription = `Add a document to a collection.

content_type selects how content is interpreted:
- 'text': content is the plain document text
- 'text-pages': content is a sequence of page texts separated by "\n---\n"
- 'auto': content is base64-encoded binary data (PDF, DOCX, ...) parsed remotely`

	GetDocumentInfoDescription = "Get information about a specific document (metadata, index status, page count, optionally content)"

	ListDocumentsDescription = "List documents in a collection with pagination (pass next_path_gt from the previous page as path_gt)"

	UpdateMetadataDescription = "Replace the metadata of an existing document"

	DeleteDocumentDescription = "Delete a document from a collection"

	SearchDocumentsDescription = `Search for documents in a collection. Returns whole-document results ranked by relevance.

filter is an optional JSON metadata filter, e.g.:
  {"language": {"$eq": "en"}}
  {"$and": [{"author": {"$eq": "John"}}, {"list:tags": {"$in": ["tech"]}}]}`

	SearchPagesDescription = "Search for relevant pages across documents in a collection. latency_mode trades speed for accuracy."

	SearchCollectionDescription = "Search a collection at snippet granularity with reranking. The finest search kind; best for question answering."

	MetadataFilterDescription = `Filter documents based on common metadata criteria (author, language, tags, timestamp range).

Builds the metadata filter expression automatically from the provided fields and runs a snippet search.`

	AdvancedFilterDescription = `Apply a custom metadata filter expression using the query language.

Operators: $eq, $ne, $gt, $gte, $lt, $lte, $in on fields; $and, $or to combine.
Examples:
  {"language": {"$eq": "en"}}
  {"timestamp": {"$gt": "2024-01-01T00:00:00"}}
  {"list:tags": {"$in": ["tech", "ai"]}}
  {"$or": [{"language": {"$eq": "en"}}, {"language": {"$eq": "es"}}]}`

	ParseDocumentDescription = "Parse a document (PDF, etc.) into page texts without indexing it"

	RerankDocumentsDescription = "Rerank a list of document texts by relevance to a query using a reranking model"
)
